package services

import (
	"strings"

	"gorm.io/gorm"
)

// ValidationError reports a rejected top-level field. Nothing is persisted
// when SaveWithBlocks returns one.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// SaveWithBlocks persists the service's scalar fields and replaces its entire
// block set with the submitted drafts, atomically. The persisted set after a
// successful call is exactly the submitted set — a full replace, not a merge.
// Submitted order values are stored as given; callers may use sparse orders.
func SaveWithBlocks(db *gorm.DB, svc *Service, drafts []BlockDraft) error {
	if strings.TrimSpace(svc.Name) == "" || strings.TrimSpace(svc.Description) == "" {
		return &ValidationError{Message: "Name and description are required."}
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := EnsureSlug(tx, svc); err != nil {
			return err
		}
		if err := tx.Save(svc).Error; err != nil {
			return err
		}

		// Delete existing blocks and create new ones.
		if err := tx.Where("service_id = ?", svc.ID).
			Delete(&ServiceContentBlock{}).Error; err != nil {
			return err
		}
		for _, d := range drafts {
			block := d.Block(svc.ID)
			if err := tx.Create(&block).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// BlockOrder is one entry of the drag-and-drop reorder payload.
type BlockOrder struct {
	ID    uint `json:"id"`
	Order int  `json:"order"`
}

// ReorderBlocks updates SortOrder on blocks matching both id and owning
// service. Ids that match nothing are silently ignored, so stale editor
// state never fails the call.
func ReorderBlocks(db *gorm.DB, serviceID uint, orders []BlockOrder) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, o := range orders {
			if err := tx.Model(&ServiceContentBlock{}).
				Where("id = ? AND service_id = ?", o.ID, serviceID).
				Update("sort_order", o.Order).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a service together with all blocks it owns.
func Delete(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var svc Service
		if err := tx.First(&svc, id).Error; err != nil {
			return err
		}
		if err := tx.Where("service_id = ?", svc.ID).
			Delete(&ServiceContentBlock{}).Error; err != nil {
			return err
		}
		return tx.Delete(&svc).Error
	})
}

// BlocksInOrder returns a service's blocks in render order: SortOrder
// ascending, ties broken by persisted id.
func BlocksInOrder(db *gorm.DB, serviceID uint) ([]ServiceContentBlock, error) {
	var blocks []ServiceContentBlock
	err := db.Where("service_id = ?", serviceID).
		Order("sort_order ASC, id ASC").
		Find(&blocks).Error
	return blocks, err
}
