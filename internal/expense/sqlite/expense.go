package sqlite

import (
	"errors"

	"gorm.io/gorm"

	"github.com/frahmantamala/vehicle-ledger/internal"
	"github.com/frahmantamala/vehicle-ledger/internal/expense"
)

// ExpenseRepository implements the expense.Repository interface using GORM
type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) expense.Repository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Create(exp *expense.Expense) error {
	return r.db.Create(exp).Error
}

func (r *ExpenseRepository) GetByID(id int64) (*expense.Expense, error) {
	var exp expense.Expense
	err := r.db.Where("id = ?", id).First(&exp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrResourceNotFound
		}
		return nil, err
	}
	return &exp, nil
}

// List returns all expenses ascending by date; id breaks ties so rows with
// equal dates keep insertion order.
func (r *ExpenseRepository) List() ([]*expense.Expense, error) {
	var expenses []*expense.Expense
	err := r.db.Order("date ASC, id ASC").Find(&expenses).Error
	return expenses, err
}

func (r *ExpenseRepository) UpdateFields(id int64, fields map[string]interface{}) error {
	return r.db.Model(&expense.Expense{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *ExpenseRepository) Delete(id int64) (bool, error) {
	res := r.db.Delete(&expense.Expense{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
