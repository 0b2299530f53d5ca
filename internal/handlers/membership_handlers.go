package handlers

import (
	"net/http"

	"fitness_club_backend/internal/models"
	"fitness_club_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// MembershipTypeHandler holds the membership type service.
type MembershipTypeHandler struct {
	typeService services.MembershipTypeService
}

// NewMembershipTypeHandler creates a new MembershipTypeHandler.
func NewMembershipTypeHandler(ts services.MembershipTypeService) *MembershipTypeHandler {
	return &MembershipTypeHandler{typeService: ts}
}

// GetMembershipTypes godoc
// @Summary      List membership types
// @Tags         membership-types
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  models.MembershipType
// @Router       /admin/membership-types/all [get]
// @Router       /membership-types/all [get]
func (h *MembershipTypeHandler) GetMembershipTypes(c *gin.Context) {
	types, err := h.typeService.FindAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "fetch membership types")
		return
	}
	if types == nil {
		types = []models.MembershipType{}
	}
	c.JSON(http.StatusOK, types)
}

// GetMembershipTypeByID godoc
// @Summary      Get a membership type
// @Tags         membership-types
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Membership type ID"
// @Success      200  {object}  models.MembershipType
// @Failure      404  {object}  utils.APIError
// @Router       /admin/membership-types/{id} [get]
func (h *MembershipTypeHandler) GetMembershipTypeByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	membershipType, err := h.typeService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "fetch membership type")
		return
	}
	c.JSON(http.StatusOK, membershipType)
}

// GetMembershipTypeByName godoc
// @Summary      Find a membership type by name
// @Tags         membership-types
// @Produce      json
// @Security     BearerAuth
// @Param        name  path      string  true  "Name"
// @Success      200   {object}  models.MembershipType
// @Failure      404   {object}  utils.APIError
// @Router       /admin/membership-types/name/{name} [get]
func (h *MembershipTypeHandler) GetMembershipTypeByName(c *gin.Context) {
	membershipType, err := h.typeService.FindByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondServiceError(c, err, "fetch membership type by name")
		return
	}
	c.JSON(http.StatusOK, membershipType)
}

// CreateMembershipType godoc
// @Summary      Create a membership type
// @Tags         membership-types
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        type  body      services.CreateMembershipTypeRequest  true  "Membership type"
// @Success      201   {object}  models.MembershipType
// @Failure      400   {object}  utils.APIError
// @Failure      409   {object}  utils.APIError
// @Router       /admin/membership-types [post]
func (h *MembershipTypeHandler) CreateMembershipType(c *gin.Context) {
	var req services.CreateMembershipTypeRequest
	if !bindJSON(c, &req, "CreateMembershipType") {
		return
	}
	membershipType, err := h.typeService.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "create membership type")
		return
	}
	c.JSON(http.StatusCreated, membershipType)
}

// UpdateMembershipType godoc
// @Summary      Update a membership type
// @Tags         membership-types
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                                true  "Membership type ID"
// @Param        type  body      services.UpdateMembershipTypeRequest  true  "Fields to change"
// @Success      200   {object}  models.MembershipType
// @Failure      404   {object}  utils.APIError
// @Router       /admin/membership-types/{id} [put]
func (h *MembershipTypeHandler) UpdateMembershipType(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req services.UpdateMembershipTypeRequest
	if !bindJSON(c, &req, "UpdateMembershipType") {
		return
	}
	membershipType, err := h.typeService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err, "update membership type")
		return
	}
	c.JSON(http.StatusOK, membershipType)
}

// DeleteMembershipType godoc
// @Summary      Delete a membership type
// @Tags         membership-types
// @Security     BearerAuth
// @Param        id   path  string  true  "Membership type ID"
// @Success      204
// @Failure      404  {object}  utils.APIError
// @Router       /admin/membership-types/{id} [delete]
func (h *MembershipTypeHandler) DeleteMembershipType(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.typeService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "delete membership type")
		return
	}
	c.Status(http.StatusNoContent)
}

// MembershipHandler holds the membership service.
type MembershipHandler struct {
	membershipService services.MembershipService
}

// NewMembershipHandler creates a new MembershipHandler.
func NewMembershipHandler(ms services.MembershipService) *MembershipHandler {
	return &MembershipHandler{membershipService: ms}
}

func respondMemberships(c *gin.Context, memberships []models.Membership, err error, action string) {
	if err != nil {
		respondServiceError(c, err, action)
		return
	}
	if memberships == nil {
		memberships = []models.Membership{}
	}
	c.JSON(http.StatusOK, memberships)
}

// GetMemberships godoc
// @Summary      List memberships
// @Tags         memberships
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  models.Membership
// @Router       /admin/memberships/all [get]
func (h *MembershipHandler) GetMemberships(c *gin.Context) {
	memberships, err := h.membershipService.FindAll(c.Request.Context())
	respondMemberships(c, memberships, err, "fetch memberships")
}

// GetMembershipByID godoc
// @Summary      Get a membership
// @Tags         memberships
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Membership ID"
// @Success      200  {object}  models.Membership
// @Failure      404  {object}  utils.APIError
// @Router       /admin/memberships/{id} [get]
func (h *MembershipHandler) GetMembershipByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	membership, err := h.membershipService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "fetch membership")
		return
	}
	c.JSON(http.StatusOK, membership)
}

// GetMembershipsByUser godoc
// @Summary      List a user's memberships
// @Tags         memberships
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path     string  true  "User ID"
// @Success      200     {array}  models.Membership
// @Router       /admin/memberships/user/{userId} [get]
func (h *MembershipHandler) GetMembershipsByUser(c *gin.Context) {
	userID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}
	memberships, err := h.membershipService.FindByUserID(c.Request.Context(), userID)
	respondMemberships(c, memberships, err, "fetch memberships by user")
}

// CreateMembership godoc
// @Summary      Issue a membership
// @Description  Window and sessions default to the membership type's.
// @Tags         memberships
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        membership  body      services.CreateMembershipRequest  true  "Membership"
// @Success      201         {object}  models.Membership
// @Failure      404         {object}  utils.APIError "User or membership type not found"
// @Router       /admin/memberships [post]
func (h *MembershipHandler) CreateMembership(c *gin.Context) {
	var req services.CreateMembershipRequest
	if !bindJSON(c, &req, "CreateMembership") {
		return
	}
	membership, err := h.membershipService.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "create membership")
		return
	}
	c.JSON(http.StatusCreated, membership)
}

// UpdateMembership godoc
// @Summary      Update a membership
// @Tags         memberships
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id          path      string                            true  "Membership ID"
// @Param        membership  body      services.UpdateMembershipRequest  true  "Fields to change"
// @Success      200         {object}  models.Membership
// @Failure      404         {object}  utils.APIError
// @Router       /admin/memberships/{id} [put]
func (h *MembershipHandler) UpdateMembership(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req services.UpdateMembershipRequest
	if !bindJSON(c, &req, "UpdateMembership") {
		return
	}
	membership, err := h.membershipService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err, "update membership")
		return
	}
	c.JSON(http.StatusOK, membership)
}

// DeleteMembership godoc
// @Summary      Delete a membership
// @Tags         memberships
// @Security     BearerAuth
// @Param        id   path  string  true  "Membership ID"
// @Success      204
// @Failure      404  {object}  utils.APIError
// @Router       /admin/memberships/{id} [delete]
func (h *MembershipHandler) DeleteMembership(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.membershipService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "delete membership")
		return
	}
	c.Status(http.StatusNoContent)
}

// GetMyMemberships godoc
// @Summary      Current user's memberships
// @Tags         memberships
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  models.Membership
// @Router       /memberships/me [get]
func (h *MembershipHandler) GetMyMemberships(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	memberships, err := h.membershipService.FindByUserID(c.Request.Context(), userID)
	respondMemberships(c, memberships, err, "fetch own memberships")
}

// PurchaseMembership godoc
// @Summary      Buy a membership
// @Tags         memberships
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        purchase  body      services.PurchaseMembershipRequest  true  "Membership type"
// @Success      201       {object}  models.Membership
// @Failure      404       {object}  utils.APIError "Membership type not found"
// @Router       /memberships [post]
func (h *MembershipHandler) PurchaseMembership(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req services.PurchaseMembershipRequest
	if !bindJSON(c, &req, "PurchaseMembership") {
		return
	}
	membership, err := h.membershipService.Purchase(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "purchase membership")
		return
	}
	c.JSON(http.StatusCreated, membership)
}
