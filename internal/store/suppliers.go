package store

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fluxo-caixa/internal/models"
)

var (
	ErrSupplierExists   = errors.New("fornecedor já cadastrado")
	ErrSupplierNotFound = errors.New("fornecedor não encontrado")
)

// SupplierStore owns access to the suppliers collection.
type SupplierStore struct {
	DB *gorm.DB
}

func NewSupplierStore(db *gorm.DB) *SupplierStore {
	return &SupplierStore{DB: db}
}

// FetchSuppliers returns the user's suppliers ordered by
// (first payment term, company_name) ascending.
func (s *SupplierStore) FetchSuppliers(userID uint) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	if err := s.DB.
		Where("user_id = ?", userID).
		Find(&suppliers).Error; err != nil {
		return nil, fmt.Errorf("fetch suppliers: %w", err)
	}
	sortSuppliers(suppliers)
	return suppliers, nil
}

// sortSuppliers orders by the numeric first payment term, then company name.
// The serialized payment_term column compares lexicographically ("30" < "7"),
// so ordering happens here, not in SQL.
func sortSuppliers(suppliers []models.Supplier) {
	sort.SliceStable(suppliers, func(i, j int) bool {
		ti, tj := firstTerm(&suppliers[i]), firstTerm(&suppliers[j])
		if ti != tj {
			return ti < tj
		}
		return suppliers[i].CompanyName < suppliers[j].CompanyName
	})
}

// firstTerm returns the supplier's earliest term; suppliers without a valid
// term list sort last.
func firstTerm(s *models.Supplier) int {
	terms := s.Terms()
	if len(terms) == 0 {
		return math.MaxInt
	}
	return terms[0]
}

// GetByID returns one supplier, ErrSupplierNotFound when absent.
func (s *SupplierStore) GetByID(userID uint, id string) (*models.Supplier, error) {
	var supplier models.Supplier
	err := s.DB.Where("id = ? AND user_id = ?", id, userID).First(&supplier).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSupplierNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &supplier, nil
}

// FindByCNPJ looks a supplier up by its raw 14-digit tax id.
func (s *SupplierStore) FindByCNPJ(userID uint, cnpj string) (*models.Supplier, error) {
	var supplier models.Supplier
	err := s.DB.Where("user_id = ? AND cnpj = ?", userID, cnpj).First(&supplier).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSupplierNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find supplier: %w", err)
	}
	return &supplier, nil
}

// CreateSupplier registers a new supplier with a generated id. A supplier
// with the same tax id must not already exist.
func (s *SupplierStore) CreateSupplier(userID uint, companyName, cnpj string, terms []int) (*models.Supplier, error) {
	var count int64
	if err := s.DB.Model(&models.Supplier{}).
		Where("user_id = ? AND cnpj = ?", userID, cnpj).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("check supplier: %w", err)
	}
	if count > 0 {
		return nil, ErrSupplierExists
	}

	supplier := models.Supplier{
		ID:          uuid.NewString(),
		UserID:      userID,
		CompanyName: companyName,
		CNPJ:        cnpj,
	}
	supplier.SetTerms(terms)

	if err := s.DB.Create(&supplier).Error; err != nil {
		return nil, fmt.Errorf("create supplier: %w", err)
	}
	return &supplier, nil
}

// UpdateSupplier changes name and payment terms in place. The tax id is
// immutable after creation.
func (s *SupplierStore) UpdateSupplier(userID uint, id, companyName string, terms []int) (*models.Supplier, error) {
	supplier, err := s.GetByID(userID, id)
	if err != nil {
		return nil, err
	}

	supplier.CompanyName = companyName
	supplier.SetTerms(terms)
	if err := s.DB.Save(supplier).Error; err != nil {
		return nil, fmt.Errorf("update supplier: %w", err)
	}
	return supplier, nil
}

// DeleteSupplier removes a supplier by id.
func (s *SupplierStore) DeleteSupplier(userID uint, id string) error {
	res := s.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Supplier{})
	if res.Error != nil {
		return fmt.Errorf("delete supplier: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrSupplierNotFound
	}
	return nil
}
