package consts

const (
	MimePrefixImage = "image"
	MimeTypePDF     = "application/pdf"
)

const (
	RoleStudent = "student"
	RoleStartup = "startup"
)
