package export

import (
	"fmt"

	"gorm.io/gorm"

	"bitbucket.org/mmdatafocus/assetseed_backend/models"
	"bitbucket.org/mmdatafocus/assetseed_backend/workflow"
)

const insertBatchSize = 500

// LoadDatabase migrates the ledger tables and bulk-loads the dataset. Tables
// are truncated first so repeated loads of the same seed stay idempotent.
func LoadDatabase(db *gorm.DB, res *workflow.Result) error {
	if err := db.AutoMigrate(
		&models.AcquisitionBatch{},
		&models.AssetUnit{},
		&models.TransferRequest{},
		&models.ReturnRequest{},
		&models.DisuseRequest{},
		&models.DisposalRequest{},
		&models.HistoryRecord{},
	); err != nil {
		return fmt.Errorf("migrate ledger tables: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&models.HistoryRecord{}, &models.DisposalRequest{}, &models.DisuseRequest{},
			&models.ReturnRequest{}, &models.TransferRequest{}, &models.AssetUnit{},
			&models.AcquisitionBatch{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return fmt.Errorf("clear ledger table: %w", err)
			}
		}

		if err := insertAll(tx, res.Batches); err != nil {
			return err
		}
		if err := insertAll(tx, res.Units); err != nil {
			return err
		}
		if err := insertAll(tx, res.Transfers); err != nil {
			return err
		}
		if err := insertAll(tx, res.Returns); err != nil {
			return err
		}
		if err := insertAll(tx, res.Disuses); err != nil {
			return err
		}
		if err := insertAll(tx, res.Disposals); err != nil {
			return err
		}
		return insertAll(tx, res.History)
	})
}

func insertAll[T any](tx *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	if err := tx.CreateInBatches(rows, insertBatchSize).Error; err != nil {
		return fmt.Errorf("insert %T rows: %w", rows[0], err)
	}
	return nil
}
