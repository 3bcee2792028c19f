package usecase

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/correduria/backoffice/internal/application/dto"
	"github.com/correduria/backoffice/internal/application/policy"
	"github.com/correduria/backoffice/internal/application/scope"
	"github.com/correduria/backoffice/internal/domain"
	"github.com/correduria/backoffice/internal/domain/entity"
	"github.com/correduria/backoffice/internal/domain/repository"
)

// UserUsecase gestiona cuentas y sus fichas satélite. El alta es el único
// flujo transaccional del sistema: usuario + empleado/cliente o nada.
type UserUsecase struct {
	users      repository.UserRepository
	employees  repository.EmployeeRepository
	customers  repository.CustomerRepository
	insurances repository.InsuranceRepository
	resolver   *scope.Resolver
	tx         TxRunner
}

func NewUserUsecase(
	users repository.UserRepository,
	employees repository.EmployeeRepository,
	customers repository.CustomerRepository,
	insurances repository.InsuranceRepository,
	resolver *scope.Resolver,
	tx TxRunner,
) *UserUsecase {
	return &UserUsecase{
		users:      users,
		employees:  employees,
		customers:  customers,
		insurances: insurances,
		resolver:   resolver,
		tx:         tx,
	}
}

// List devuelve todos los usuarios (solo Admin).
func (uc *UserUsecase) List(actor *entity.User) ([]dto.UserResponse, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if !policy.UserViewAll(actor) {
		return nil, errNoAutorizado()
	}
	users, err := uc.users.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *dto.NewUserResponse(u))
	}
	return out, nil
}

// Create da de alta un usuario y su ficha satélite en una sola transacción.
// La contraseña inicial es el propio DNI.
func (uc *UserUsecase) Create(ctx context.Context, actor *entity.User, req dto.CreateUserRequest) (*dto.UserDetailResponse, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if !policy.UserCreate(actor) {
		return nil, errNoAutorizado()
	}

	fe := domain.FieldErrors{}
	checkDNI(fe, req.DNI)
	checkName(fe, "first_name", req.FirstName)
	checkName(fe, "last_name", req.LastName)
	checkEmail(fe, req.Email)
	if !entity.ValidRole(req.Role) {
		fe.Add("role", "Rol desconocido.")
	}
	if req.Role == entity.RoleCustomer {
		checkPhone(fe, "phone_number", req.PhoneNumber, true)
		if req.Address == nil || *req.Address == "" {
			fe.Add("address", "La dirección es obligatoria.")
		} else if len(*req.Address) > 255 {
			fe.Add("address", "La dirección no puede superar 255 caracteres.")
		}
	}
	if err := finish(fe); err != nil {
		return nil, err
	}

	// La empresa del nuevo empleado: un Empleado solo da de alta en la suya;
	// Admin y Manager la indican en el payload.
	companyID := req.CompanyID
	if req.Role == entity.RoleEmployee || req.Role == entity.RoleManager {
		if actor.Role == entity.RoleEmployee {
			emp, err := uc.resolver.ActorEmployee(actor)
			if err != nil {
				return nil, err
			}
			companyID = emp.CompanyID
		}
		if req.Role == entity.RoleManager && companyID != nil {
			exists, err := uc.employees.ManagerExists(*companyID)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, domain.Integrity("Ya existe un manager para esta compañía.")
			}
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(strings.ToUpper(req.DNI)), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		DNI:          strings.ToUpper(req.DNI),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	var employee *entity.Employee
	var customer *entity.Customer

	err = uc.tx.Run(ctx, func(
		users repository.UserRepository,
		employees repository.EmployeeRepository,
		customers repository.CustomerRepository,
	) error {
		if err := users.Create(user); err != nil {
			return err
		}
		switch {
		case user.IsStaff():
			employee = &entity.Employee{AuthID: user.ID, CompanyID: companyID}
			return employees.Create(employee)
		case user.Role == entity.RoleCustomer:
			customer = &entity.Customer{
				AuthID:      user.ID,
				PhoneNumber: req.PhoneNumber,
				Address:     req.Address,
			}
			return customers.Create(customer)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.UserDetailResponse{
		User:     *dto.NewUserResponse(user),
		Employee: dto.NewEmployeeResponse(employee),
		Customer: dto.NewCustomerResponse(customer),
	}, nil
}

// Show devuelve un usuario con su ficha satélite anidada (solo Admin).
func (uc *UserUsecase) Show(actor *entity.User, id int64) (*dto.UserDetailResponse, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if !policy.UserView(actor) {
		return nil, errNoAutorizado()
	}
	user, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFound("Usuario no encontrado")
	}
	out := &dto.UserDetailResponse{User: *dto.NewUserResponse(user)}
	if user.IsStaff() {
		emp, err := uc.employees.GetByAuthID(user.ID)
		if err != nil {
			return nil, err
		}
		out.Employee = dto.NewEmployeeResponse(emp)
	} else if user.Role == entity.RoleCustomer {
		cus, err := uc.customers.GetByAuthID(user.ID)
		if err != nil {
			return nil, err
		}
		out.Customer = dto.NewCustomerResponse(cus)
	}
	return out, nil
}

// Update modifica un usuario y su ficha satélite. El rol no se cambia nunca,
// sea quien sea el actor.
func (uc *UserUsecase) Update(actor *entity.User, id int64, req dto.UpdateUserRequest) (*dto.UserDetailResponse, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if !policy.UserUpdate(actor) {
		return nil, errNoAutorizado()
	}
	user, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFound("Usuario no encontrado")
	}
	if req.Role != "" && req.Role != user.Role {
		return nil, domain.Integrity("No se puede cambiar el rol de un usuario")
	}

	fe := domain.FieldErrors{}
	checkDNI(fe, req.DNI)
	checkName(fe, "first_name", req.FirstName)
	checkName(fe, "last_name", req.LastName)
	checkEmail(fe, req.Email)
	if user.Role == entity.RoleCustomer {
		checkPhone(fe, "phone_number", req.PhoneNumber, false)
		checkOptionalLen(fe, "address", req.Address, 1, 255)
	}
	if err := finish(fe); err != nil {
		return nil, err
	}

	user.DNI = strings.ToUpper(req.DNI)
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Email = req.Email
	user.UpdatedAt = time.Now()
	if err := uc.users.Update(user); err != nil {
		return nil, err
	}

	out := &dto.UserDetailResponse{User: *dto.NewUserResponse(user)}
	if user.IsStaff() {
		emp, err := uc.employees.GetByAuthID(user.ID)
		if err != nil {
			return nil, err
		}
		if emp != nil && req.CompanyID != nil {
			if user.Role == entity.RoleManager {
				if err := uc.checkManagerMove(emp, *req.CompanyID); err != nil {
					return nil, err
				}
			}
			emp.CompanyID = req.CompanyID
			if err := uc.employees.Update(emp); err != nil {
				return nil, err
			}
		}
		out.Employee = dto.NewEmployeeResponse(emp)
	} else if user.Role == entity.RoleCustomer {
		cus, err := uc.customers.GetByAuthID(user.ID)
		if err != nil {
			return nil, err
		}
		if cus != nil {
			if req.PhoneNumber != nil {
				cus.PhoneNumber = req.PhoneNumber
			}
			if req.Address != nil {
				cus.Address = req.Address
			}
			if err := uc.customers.Update(cus); err != nil {
				return nil, err
			}
		}
		out.Customer = dto.NewCustomerResponse(cus)
	}
	return out, nil
}

// checkManagerMove aplica la regla de un solo manager al mover de empresa.
func (uc *UserUsecase) checkManagerMove(emp *entity.Employee, targetCompany int64) error {
	if emp.CompanyID != nil && *emp.CompanyID == targetCompany {
		return nil
	}
	exists, err := uc.employees.ManagerExists(targetCompany)
	if err != nil {
		return err
	}
	if exists {
		return domain.Integrity("Ya existe un manager para esta compañía.")
	}
	return nil
}

// Delete elimina un usuario (solo Admin). Un Admin no se puede borrar: para
// el exterior ese usuario "no existe" como objetivo de borrado. El borrado se
// bloquea mientras la ficha satélite tenga pólizas; la ficha cae en cascada.
func (uc *UserUsecase) Delete(actor *entity.User, id int64) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if !policy.UserDelete(actor) {
		return errNoAutorizado()
	}
	user, err := uc.users.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil || user.Role == entity.RoleAdmin {
		return domain.NotFound("Usuario no encontrado")
	}
	switch {
	case user.IsStaff():
		emp, err := uc.employees.GetByAuthID(user.ID)
		if err != nil {
			return err
		}
		if emp != nil {
			n, err := uc.insurances.CountByEmployee(emp.ID)
			if err != nil {
				return err
			}
			if n > 0 {
				return domain.Integrity("No se puede eliminar el usuario porque tiene pólizas asociadas")
			}
		}
	case user.Role == entity.RoleCustomer:
		cus, err := uc.customers.GetByAuthID(user.ID)
		if err != nil {
			return err
		}
		if cus != nil {
			n, err := uc.insurances.CountByCustomer(cus.ID)
			if err != nil {
				return err
			}
			if n > 0 {
				return domain.Integrity("No se puede eliminar el usuario porque tiene pólizas asociadas")
			}
		}
	}
	return uc.users.Delete(id)
}
