package entity

// Employee es el registro satélite de un User con rol Empleado o Manager.
// El rol vive en el User, no aquí: a lo sumo un Manager por empresa.
// Se elimina en cascada con el User; company_id queda a null si se borra la empresa.
type Employee struct {
	ID        int64
	AuthID    int64  // User.ID
	CompanyID *int64 // nullable
}
