package user

type Role string

const (
	RoleBoss    Role = "boss"
	RoleStudent Role = "student"
)

var AllRoles = []Role{
	RoleBoss,
	RoleStudent,
}

func (r Role) IsValid() bool {
	for _, v := range AllRoles {
		if r == v {
			return true
		}
	}
	return false
}
