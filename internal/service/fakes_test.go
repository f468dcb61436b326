package service

import (
	"context"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes. Mutating methods mirror the operator semantics
// of the mongo implementations ($addToSet, $push, $pull).

type fakeStore struct{}

func (fakeStore) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeUserRepo struct {
	users map[primitive.ObjectID]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*model.User)}
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]model.User, error) {
	seen := make(map[primitive.ObjectID]bool)
	var out []model.User
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if u, ok := r.users[id]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	user.ID = primitive.NewObjectID()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) SetBusinessID(_ context.Context, userID, businessID primitive.ObjectID) error {
	u, ok := r.users[userID]
	if !ok {
		return repository.ErrNotFound
	}
	id := businessID
	u.BusinessID = &id
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, userID primitive.ObjectID, hashedPassword string) error {
	u, ok := r.users[userID]
	if !ok {
		return repository.ErrNotFound
	}
	u.Password = hashedPassword
	return nil
}

type fakeBusinessRepo struct {
	businesses map[primitive.ObjectID]*model.Business
}

func newFakeBusinessRepo() *fakeBusinessRepo {
	return &fakeBusinessRepo{businesses: make(map[primitive.ObjectID]*model.Business)}
}

func (r *fakeBusinessRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Business, error) {
	b, ok := r.businesses[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBusinessRepo) FindByOwner(_ context.Context, ownerID primitive.ObjectID) (*model.Business, error) {
	for _, b := range r.businesses {
		if b.OwnerID == ownerID {
			copied := *b
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeBusinessRepo) FindByName(_ context.Context, name string) (*model.Business, error) {
	for _, b := range r.businesses {
		if b.Name == name {
			copied := *b
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeBusinessRepo) FindByAdmin(_ context.Context, userID primitive.ObjectID) (*model.Business, error) {
	for _, b := range r.businesses {
		if b.HasAdmin(userID) {
			copied := *b
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeBusinessRepo) Create(_ context.Context, business *model.Business) error {
	business.ID = primitive.NewObjectID()
	copied := *business
	r.businesses[business.ID] = &copied
	return nil
}

func (r *fakeBusinessRepo) UpdateNameType(_ context.Context, id primitive.ObjectID, name, businessType string) (*model.Business, error) {
	b, ok := r.businesses[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	b.Name = name
	b.Type = businessType
	copied := *b
	return &copied, nil
}

func (r *fakeBusinessRepo) AddAdmins(_ context.Context, id primitive.ObjectID, admins []primitive.ObjectID) (*model.Business, error) {
	b, ok := r.businesses[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	for _, admin := range admins {
		if !b.HasAdmin(admin) {
			b.Admins = append(b.Admins, admin)
		}
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBusinessRepo) SetTills(_ context.Context, id primitive.ObjectID, tills []primitive.ObjectID) (*model.Business, error) {
	b, ok := r.businesses[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	b.Tills = tills
	copied := *b
	return &copied, nil
}

func (r *fakeBusinessRepo) AddTill(_ context.Context, id, tillID primitive.ObjectID) error {
	b, ok := r.businesses[id]
	if !ok {
		return repository.ErrNotFound
	}
	b.Tills = append(b.Tills, tillID)
	return nil
}

type fakeTabRepo struct {
	tabs map[primitive.ObjectID]*model.Tab
}

func newFakeTabRepo() *fakeTabRepo {
	return &fakeTabRepo{tabs: make(map[primitive.ObjectID]*model.Tab)}
}

func (r *fakeTabRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Tab, error) {
	t, ok := r.tabs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *t
	return &copied, nil
}

func (r *fakeTabRepo) FindAll(_ context.Context) ([]model.Tab, error) {
	out := make([]model.Tab, 0, len(r.tabs))
	for _, t := range r.tabs {
		out = append(out, *t)
	}
	return out, nil
}

func (r *fakeTabRepo) Create(_ context.Context, tab *model.Tab) error {
	tab.ID = primitive.NewObjectID()
	if tab.Cards == nil {
		tab.Cards = []primitive.ObjectID{}
	}
	copied := *tab
	r.tabs[tab.ID] = &copied
	return nil
}

func (r *fakeTabRepo) AddCard(_ context.Context, id, cardID primitive.ObjectID) error {
	t, ok := r.tabs[id]
	if !ok {
		return repository.ErrNotFound
	}
	t.Cards = append(t.Cards, cardID)
	return nil
}

func (r *fakeTabRepo) RemoveCard(_ context.Context, id, cardID primitive.ObjectID) error {
	t, ok := r.tabs[id]
	if !ok {
		return repository.ErrNotFound
	}
	out := t.Cards[:0]
	for _, c := range t.Cards {
		if c != cardID {
			out = append(out, c)
		}
	}
	t.Cards = out
	return nil
}

type fakeCardRepo struct {
	cards map[primitive.ObjectID]*model.Card
}

func newFakeCardRepo() *fakeCardRepo {
	return &fakeCardRepo{cards: make(map[primitive.ObjectID]*model.Card)}
}

func (r *fakeCardRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Card, error) {
	c, ok := r.cards[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *fakeCardRepo) Create(_ context.Context, card *model.Card) error {
	card.ID = primitive.NewObjectID()
	if card.Items == nil {
		card.Items = []primitive.ObjectID{}
	}
	copied := *card
	r.cards[card.ID] = &copied
	return nil
}

func (r *fakeCardRepo) UpdatePosition(_ context.Context, id primitive.ObjectID, dims model.Dimensions, static bool) error {
	c, ok := r.cards[id]
	if !ok {
		return repository.ErrNotFound
	}
	c.Dimensions = dims
	c.Static = static
	return nil
}

func (r *fakeCardRepo) UpdateNameColor(_ context.Context, id primitive.ObjectID, name, color string) error {
	c, ok := r.cards[id]
	if !ok {
		return repository.ErrNotFound
	}
	c.Name = name
	c.Color = color
	return nil
}

func (r *fakeCardRepo) AddItem(_ context.Context, id, itemID primitive.ObjectID) error {
	c, ok := r.cards[id]
	if !ok {
		return repository.ErrNotFound
	}
	c.Items = append(c.Items, itemID)
	return nil
}

func (r *fakeCardRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(r.cards, id)
	return nil
}

type fakeItemRepo struct {
	items map[primitive.ObjectID]*model.Item
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[primitive.ObjectID]*model.Item)}
}

func (r *fakeItemRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Item, error) {
	i, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *i
	return &copied, nil
}

func (r *fakeItemRepo) Create(_ context.Context, item *model.Item) error {
	item.ID = primitive.NewObjectID()
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *fakeItemRepo) Update(_ context.Context, item *model.Item) error {
	if _, ok := r.items[item.ID]; !ok {
		return repository.ErrNotFound
	}
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *fakeItemRepo) DeleteByIDs(_ context.Context, ids []primitive.ObjectID) error {
	for _, id := range ids {
		delete(r.items, id)
	}
	return nil
}

type fakeTillRepo struct {
	tills map[primitive.ObjectID]*model.Till
}

func newFakeTillRepo() *fakeTillRepo {
	return &fakeTillRepo{tills: make(map[primitive.ObjectID]*model.Till)}
}

func (r *fakeTillRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Till, error) {
	t, ok := r.tills[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *t
	return &copied, nil
}

func (r *fakeTillRepo) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]model.Till, error) {
	var out []model.Till
	for _, id := range ids {
		if t, ok := r.tills[id]; ok {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakeTillRepo) Create(_ context.Context, till *model.Till) error {
	till.ID = primitive.NewObjectID()
	if till.Employees == nil {
		till.Employees = []string{}
	}
	if till.Transactions == nil {
		till.Transactions = []primitive.ObjectID{}
	}
	copied := *till
	r.tills[till.ID] = &copied
	return nil
}

func (r *fakeTillRepo) AddEmployees(_ context.Context, id primitive.ObjectID, emails []string) (*model.Till, error) {
	t, ok := r.tills[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	for _, email := range emails {
		if !t.HasEmployee(email) {
			t.Employees = append(t.Employees, email)
		}
	}
	copied := *t
	return &copied, nil
}

func (r *fakeTillRepo) AddTransaction(_ context.Context, id, transactionID primitive.ObjectID) error {
	t, ok := r.tills[id]
	if !ok {
		return repository.ErrNotFound
	}
	t.Transactions = append(t.Transactions, transactionID)
	return nil
}

type fakeEmployeeRepo struct {
	employees map[primitive.ObjectID]*model.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[primitive.ObjectID]*model.Employee)}
}

func (r *fakeEmployeeRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *e
	return &copied, nil
}

func (r *fakeEmployeeRepo) FindByEmail(_ context.Context, email string) (*model.Employee, error) {
	for _, e := range r.employees {
		if e.Email == email {
			copied := *e
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeEmployeeRepo) FindByEmails(_ context.Context, emails []string) ([]model.Employee, error) {
	var out []model.Employee
	seen := make(map[string]bool)
	for _, email := range emails {
		if seen[email] {
			continue
		}
		seen[email] = true
		for _, e := range r.employees {
			if e.Email == email {
				out = append(out, *e)
			}
		}
	}
	return out, nil
}

func (r *fakeEmployeeRepo) Create(_ context.Context, employee *model.Employee) error {
	employee.ID = primitive.NewObjectID()
	copied := *employee
	r.employees[employee.ID] = &copied
	return nil
}

type fakeTransactionRepo struct {
	transactions map[primitive.ObjectID]*model.Transaction
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{transactions: make(map[primitive.ObjectID]*model.Transaction)}
}

func (r *fakeTransactionRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Transaction, error) {
	t, ok := r.transactions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *t
	return &copied, nil
}

func (r *fakeTransactionRepo) Create(_ context.Context, transaction *model.Transaction) error {
	transaction.ID = primitive.NewObjectID()
	copied := *transaction
	r.transactions[transaction.ID] = &copied
	return nil
}
