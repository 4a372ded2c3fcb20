package user

type Role string

const (
	RoleClient Role = "Cliente"
	RoleBarber Role = "Barbero"
)

func (r Role) Valid() bool {
	return r == RoleClient || r == RoleBarber
}
