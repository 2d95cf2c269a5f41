package repository

import "gorm.io/gorm"

// TxRepos bundles the repositories participating in one transaction.
type TxRepos interface {
	Products() ProductRepository
	Customers() CustomerRepository
	Orders() OrderRepository
}

// TransactionManager hides transaction begin/commit/rollback from services.
// The callback either returns nil (commit) or an error (full rollback); no
// partial effect is ever visible outside the transaction.
type TransactionManager interface {
	WithinTx(fn func(r TxRepos) error) error
}

type txRepos struct {
	products  ProductRepository
	customers CustomerRepository
	orders    OrderRepository
}

func (r *txRepos) Products() ProductRepository   { return r.products }
func (r *txRepos) Customers() CustomerRepository { return r.customers }
func (r *txRepos) Orders() OrderRepository       { return r.orders }

type txManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) TransactionManager {
	return &txManager{db: db}
}

func (m *txManager) WithinTx(fn func(r TxRepos) error) error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		// repositories are rebuilt on the transaction handle
		return fn(&txRepos{
			products:  NewProductRepo(tx),
			customers: NewCustomerRepo(tx),
			orders:    NewOrderRepo(tx),
		})
	})
}
