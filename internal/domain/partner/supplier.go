package partner

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/openpharm/backend/internal/domain/shared"
)

// SupplierStatus represents the status of a supplier
type SupplierStatus string

const (
	SupplierStatusActive   SupplierStatus = "Active"
	SupplierStatusInactive SupplierStatus = "Inactive"
)

var supplierEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Supplier represents a medicine supplier. Stock entries reference the
// supplier that shipped them; the supplier itself carries no quantity
// semantics.
type Supplier struct {
	shared.OwnedAggregateRoot
	Name    string         `gorm:"type:varchar(200);not null"`
	Email   string         `gorm:"type:varchar(320)"`
	Contact string         `gorm:"type:varchar(50)"`
	Address string         `gorm:"type:text"`
	Status  SupplierStatus `gorm:"type:varchar(20);not null;default:'Active'"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// NewSupplier creates a new supplier with required fields
func NewSupplier(ownerID uuid.UUID, name string) (*Supplier, error) {
	if err := validateSupplierName(name); err != nil {
		return nil, err
	}

	return &Supplier{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(ownerID),
		Name:               strings.TrimSpace(name),
		Status:             SupplierStatusActive,
	}, nil
}

// Update updates the supplier's basic information
func (s *Supplier) Update(name string) error {
	if err := validateSupplierName(name); err != nil {
		return err
	}

	s.Name = strings.TrimSpace(name)
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// SetContact sets the supplier's contact information
func (s *Supplier) SetContact(email, contact string) error {
	if email != "" && !supplierEmailRegex.MatchString(strings.TrimSpace(email)) {
		return shared.NewDomainError("INVALID_EMAIL", "Email format is invalid")
	}
	if contact != "" && len(contact) > 50 {
		return shared.NewDomainError("INVALID_CONTACT", "Contact cannot exceed 50 characters")
	}

	s.Email = strings.ToLower(strings.TrimSpace(email))
	s.Contact = strings.TrimSpace(contact)
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// SetAddress sets the supplier's address
func (s *Supplier) SetAddress(address string) {
	s.Address = strings.TrimSpace(address)
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

// SetStatus sets the supplier's status
func (s *Supplier) SetStatus(status SupplierStatus) error {
	switch status {
	case SupplierStatusActive, SupplierStatusInactive:
	default:
		return shared.NewDomainError("INVALID_STATUS", "Status must be Active or Inactive")
	}

	s.Status = status
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// IsActive reports whether the supplier can receive new stock entries
func (s *Supplier) IsActive() bool {
	return s.Status == SupplierStatusActive
}

func validateSupplierName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Supplier name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Supplier name cannot exceed 200 characters")
	}
	return nil
}
