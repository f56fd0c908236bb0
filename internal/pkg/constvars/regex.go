package constvars

const (
	RegexEmail     = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	RegexNumeric   = `^\d+$`
	RegexPhone10   = `^\d{10}$`
	RegexObjectID  = `^[a-fA-F0-9]{24}$`
	RegexRequestID = `^[A-Za-z0-9._:-]{1,64}$`
)
