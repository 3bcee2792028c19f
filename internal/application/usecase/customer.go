package usecase

import (
	"github.com/correduria/backoffice/internal/application/dto"
	"github.com/correduria/backoffice/internal/application/policy"
	"github.com/correduria/backoffice/internal/application/scope"
	"github.com/correduria/backoffice/internal/domain"
	"github.com/correduria/backoffice/internal/domain/entity"
	"github.com/correduria/backoffice/internal/domain/repository"
)

// CustomerUsecase gestiona las fichas de cliente.
type CustomerUsecase struct {
	customers  repository.CustomerRepository
	users      repository.UserRepository
	insurances repository.InsuranceRepository
	resolver   *scope.Resolver
}

func NewCustomerUsecase(
	customers repository.CustomerRepository,
	users repository.UserRepository,
	insurances repository.InsuranceRepository,
	resolver *scope.Resolver,
) *CustomerUsecase {
	return &CustomerUsecase{
		customers:  customers,
		users:      users,
		insurances: insurances,
		resolver:   resolver,
	}
}

// List devuelve todos los clientes con su usuario (personal de la correduría).
func (uc *CustomerUsecase) List(actor *entity.User) ([]dto.CustomerWithUser, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if !policy.CustomerViewAll(actor) {
		return nil, errNoAutorizado()
	}
	customers, err := uc.customers.List()
	if err != nil {
		return nil, err
	}
	return uc.withUsers(customers)
}

// Create crea la ficha de cliente para un usuario con rol Cliente ya existente.
func (uc *CustomerUsecase) Create(actor *entity.User, req dto.CreateCustomerRequest) (*dto.CustomerWithUser, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if !policy.CustomerCreate(actor) {
		return nil, errNoAutorizado()
	}
	user, err := uc.users.GetByID(req.AuthID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFound("Usuario no encontrado")
	}
	if user.Role != entity.RoleCustomer {
		return nil, domain.Integrity("El usuario no tiene rol de cliente.")
	}
	existing, err := uc.customers.GetByAuthID(user.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Integrity("Este usuario ya tiene una ficha de cliente.")
	}
	fe := domain.FieldErrors{}
	checkPhone(fe, "phone_number", req.PhoneNumber, true)
	checkOptionalLen(fe, "address", req.Address, 1, 255)
	if err := finish(fe); err != nil {
		return nil, err
	}
	customer := &entity.Customer{
		AuthID:      req.AuthID,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	}
	if err := uc.customers.Create(customer); err != nil {
		return nil, err
	}
	out := dto.NewCustomerWithUser(customer, user)
	return &out, nil
}

// Show devuelve un cliente con su usuario.
func (uc *CustomerUsecase) Show(actor *entity.User, id int64) (*dto.CustomerWithUser, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if !policy.CustomerView(actor) {
		return nil, errNoAutorizado()
	}
	customer, err := uc.customers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.NotFound("Cliente no encontrado")
	}
	user, err := uc.users.GetByID(customer.AuthID)
	if err != nil {
		return nil, err
	}
	out := dto.NewCustomerWithUser(customer, user)
	return &out, nil
}

// Detail devuelve el agregado cliente + usuario + pólizas + incidencias. Para
// el personal, solo si el cliente es suyo; Admin ve cualquiera.
func (uc *CustomerUsecase) Detail(actor *entity.User, id int64) (*dto.CustomerDetailResponse, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if !policy.CustomerViewAll(actor) {
		return nil, errNoAutorizado()
	}
	customer, err := uc.customers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.NotFound("Cliente no encontrado")
	}
	detail, err := uc.resolver.CustomerDetail(actor, customer)
	if err != nil {
		return nil, err
	}
	return &dto.CustomerDetailResponse{
		Customer:   *dto.NewCustomerResponse(detail.Customer),
		User:       dto.NewUserResponse(detail.User),
		Insurances: dto.NewInsuranceList(detail.Insurances),
		Issues:     dto.NewIssueList(detail.Issues),
	}, nil
}

// Update modifica los datos de contacto de un cliente.
func (uc *CustomerUsecase) Update(actor *entity.User, id int64, req dto.UpdateCustomerRequest) (*dto.CustomerWithUser, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if !policy.CustomerUpdate(actor) {
		return nil, errNoAutorizado()
	}
	customer, err := uc.customers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.NotFound("Cliente no encontrado")
	}
	fe := domain.FieldErrors{}
	checkPhone(fe, "phone_number", req.PhoneNumber, false)
	checkOptionalLen(fe, "address", req.Address, 1, 255)
	if err := finish(fe); err != nil {
		return nil, err
	}
	if req.PhoneNumber != nil {
		customer.PhoneNumber = req.PhoneNumber
	}
	if req.Address != nil {
		customer.Address = req.Address
	}
	if err := uc.customers.Update(customer); err != nil {
		return nil, err
	}
	user, err := uc.users.GetByID(customer.AuthID)
	if err != nil {
		return nil, err
	}
	out := dto.NewCustomerWithUser(customer, user)
	return &out, nil
}

// Delete elimina una ficha de cliente (solo Admin); se bloquea si el cliente
// tiene pólizas contratadas.
func (uc *CustomerUsecase) Delete(actor *entity.User, id int64) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if !policy.CustomerDelete(actor) {
		return errNoAutorizado()
	}
	customer, err := uc.customers.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.NotFound("Cliente no encontrado")
	}
	n, err := uc.insurances.CountByCustomer(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.Integrity("No se puede eliminar un cliente con seguros asociados.")
	}
	return uc.customers.Delete(id)
}

// Mine devuelve los clientes a los que el empleado del actor ha vendido
// alguna póliza.
func (uc *CustomerUsecase) Mine(actor *entity.User) ([]dto.CustomerWithUser, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if !policy.CustomerViewMine(actor) {
		return nil, errNoAutorizado()
	}
	pairs, err := uc.resolver.MyCustomers(actor)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerWithUser, 0, len(pairs))
	for _, pair := range pairs {
		out = append(out, dto.NewCustomerWithUser(pair.Customer, pair.User))
	}
	return out, nil
}

func (uc *CustomerUsecase) withUsers(customers []*entity.Customer) ([]dto.CustomerWithUser, error) {
	out := make([]dto.CustomerWithUser, 0, len(customers))
	for _, c := range customers {
		u, err := uc.users.GetByID(c.AuthID)
		if err != nil {
			return nil, err
		}
		out = append(out, dto.NewCustomerWithUser(c, u))
	}
	return out, nil
}
