package trade

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/openpharm/backend/internal/domain/shared"
)

// ReturnType distinguishes who the medicine moves between.
type ReturnType string

const (
	// ReturnTypeCustomer is stock coming back from a customer; the batch
	// and the medicine's aggregate counter are both restocked.
	ReturnTypeCustomer ReturnType = "customer"
	// ReturnTypeSupplier is stock sent back to a supplier; both counters
	// are deducted.
	ReturnTypeSupplier ReturnType = "supplier"
)

// MedicineReturn records a quantity moved back into or out of a batch
// outside the normal sale flow. Deleting a return does not reverse the
// stock movement it caused, mirroring sale deletion.
type MedicineReturn struct {
	shared.OwnedAggregateRoot
	StockEntryID uuid.UUID  `gorm:"type:uuid;not null;index"`
	MedicineID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Quantity     int        `gorm:"not null;check:quantity > 0"`
	Reason       string     `gorm:"type:text"`
	ReturnType   ReturnType `gorm:"type:varchar(20);not null"`
	Date         time.Time  `gorm:"not null;index"`
	ReturnedByID uuid.UUID  `gorm:"type:uuid;not null"`
}

// TableName returns the table name for GORM
func (MedicineReturn) TableName() string {
	return "medicine_returns"
}

// NewMedicineReturn creates a return record
func NewMedicineReturn(
	ownerID, stockEntryID, medicineID uuid.UUID,
	quantity int,
	reason string,
	returnType ReturnType,
) (*MedicineReturn, error) {
	if stockEntryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_BATCH", "Batch reference cannot be empty")
	}
	if medicineID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_MEDICINE", "Medicine reference cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if err := validateReturnType(returnType); err != nil {
		return nil, err
	}

	return &MedicineReturn{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(ownerID),
		StockEntryID:       stockEntryID,
		MedicineID:         medicineID,
		Quantity:           quantity,
		Reason:             strings.TrimSpace(reason),
		ReturnType:         returnType,
		Date:               time.Now(),
		ReturnedByID:       ownerID,
	}, nil
}

// UpdateDetails updates the mutable fields: reason and return type. The
// quantity and batch are fixed because the stock movement already
// happened when the return was created.
func (r *MedicineReturn) UpdateDetails(reason string, returnType ReturnType) error {
	if err := validateReturnType(returnType); err != nil {
		return err
	}

	r.Reason = strings.TrimSpace(reason)
	r.ReturnType = returnType
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	return nil
}

// IsCustomerReturn reports whether stock flows back into the batch
func (r *MedicineReturn) IsCustomerReturn() bool {
	return r.ReturnType == ReturnTypeCustomer
}

func validateReturnType(returnType ReturnType) error {
	switch returnType {
	case ReturnTypeCustomer, ReturnTypeSupplier:
		return nil
	default:
		return shared.NewDomainError("INVALID_RETURN_TYPE", "Return type must be customer or supplier")
	}
}
