package validators

// Field sets per resource. Create uses them with requireAll, update without.

var UserFields = []Field{
	{Name: "email", Check: String(Email), Message: "must be a valid email address"},
	{Name: "password", Check: String(Password), Message: "must be at least 8 characters and contain upper-case, lower-case letters and a digit"},
	{Name: "phoneNumber", Check: String(PhoneNumber), Message: "must contain 10 to 15 digits with an optional leading '+'"},
	{Name: "firstName", Check: String(PersonName), Message: "must contain only letters, spaces or hyphens (1-50 characters)"},
	{Name: "lastName", Check: String(PersonName), Message: "must contain only letters, spaces or hyphens (1-50 characters)"},
	{Name: "gender", Check: String(Gender), Message: "must be 'male' or 'female'"},
	{Name: "birthDate", Check: String(BirthDate), Message: "must be a past date in format 'YYYY-MM-DD HH:MM:SS'"},
	{Name: "role", Check: String(Role), Message: "must be one of 'client', 'trainer', 'admin'"},
}

// RegisterFields is UserFields without role; self-registration always yields a client.
var RegisterFields = UserFields[:7]

var LoginFields = []Field{
	{Name: "email", Check: String(Email), Message: "must be a valid email address"},
	{Name: "password", Check: String(func(s string) bool { return s != "" }), Message: "must not be empty"},
}

var TrainerFields = []Field{
	{Name: "userId", Check: String(UUID), Message: "must be a valid UUID"},
}

// TrainerOptionalFields are validated when present but never required.
var TrainerOptionalFields = []Field{
	{Name: "description", Check: OptionalString(1000), Message: "must be a string of at most 1000 characters"},
}

var TrainingRoomFields = []Field{
	{Name: "name", Check: String(EntityName), Message: "must be a non-empty name of at most 100 characters"},
	{Name: "capacity", Check: PositiveInt(), Message: "must be a positive integer"},
}

var TrainingFields = []Field{
	{Name: "roomId", Check: String(UUID), Message: "must be a valid UUID"},
	{Name: "trainerId", Check: String(UUID), Message: "must be a valid UUID"},
	{Name: "date", Check: String(DateTime), Message: "must be in format 'YYYY-MM-DD HH:MM:SS'"},
}

// TrainerTrainingFields is used on the trainer's own schedule, where trainerId is implied.
var TrainerTrainingFields = []Field{TrainingFields[0], TrainingFields[2]}

var MembershipTypeFields = []Field{
	{Name: "name", Check: String(EntityName), Message: "must be a non-empty name of at most 100 characters"},
	{Name: "price", Check: PositiveNumber(), Message: "must be a positive number"},
	{Name: "days", Check: PositiveInt(), Message: "must be a positive integer"},
	{Name: "sessions", Check: PositiveInt(), Message: "must be a positive integer"},
}

var MembershipFields = []Field{
	{Name: "userId", Check: String(UUID), Message: "must be a valid UUID"},
	{Name: "membershipTypeId", Check: String(UUID), Message: "must be a valid UUID"},
}

// MembershipOptionalFields allow an admin to correct a membership window.
var MembershipOptionalFields = []Field{
	{Name: "startDate", Check: String(DateTime), Message: "must be in format 'YYYY-MM-DD HH:MM:SS'"},
	{Name: "endDate", Check: String(DateTime), Message: "must be in format 'YYYY-MM-DD HH:MM:SS'"},
	{Name: "availableSessions", Check: NonNegativeInt(), Message: "must be a non-negative integer"},
}

var PurchaseMembershipFields = []Field{
	{Name: "membershipTypeId", Check: String(UUID), Message: "must be a valid UUID"},
}

var AttendanceFields = []Field{
	{Name: "membershipId", Check: String(UUID), Message: "must be a valid UUID"},
	{Name: "trainingId", Check: String(UUID), Message: "must be a valid UUID"},
	{Name: "status", Check: String(AttendanceStatus), Message: "must be one of 'waiting', 'attended', 'absent', 'cancelled'"},
}

var SignUpFields = AttendanceFields[:2]
