package paymentController

import (
	"fmt"
	"testing"
	"time"

	"elearn/database"
	"elearn/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}
	return db
}

func TestPaymentAmountAddsTax(t *testing.T) {
	setupDB(t)

	course := models.Course{Price: 100000}
	assert.Equal(t, 111000, paymentAmount(&course))

	free := models.Course{Price: 0}
	assert.Equal(t, 0, paymentAmount(&free))
}

func TestPaymentAmountWithActivePromotion(t *testing.T) {
	db := setupDB(t)

	promotion := models.Promotion{
		DiscountPercent: 50,
		ValidFrom:       time.Now().Add(-time.Hour),
		ValidUntil:      time.Now().Add(time.Hour),
	}
	require.NoError(t, db.Create(&promotion).Error)

	course := models.Course{Price: 100000, PromotionID: &promotion.ID}

	// Discount applies to price plus tax
	assert.Equal(t, 55500, paymentAmount(&course))
}

func TestPaymentAmountIgnoresExpiredPromotion(t *testing.T) {
	db := setupDB(t)

	promotion := models.Promotion{
		DiscountPercent: 50,
		ValidFrom:       time.Now().Add(-48 * time.Hour),
		ValidUntil:      time.Now().Add(-24 * time.Hour),
	}
	require.NoError(t, db.Create(&promotion).Error)

	course := models.Course{Price: 100000, PromotionID: &promotion.ID}
	assert.Equal(t, 111000, paymentAmount(&course))
}
