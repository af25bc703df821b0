package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/trumanharry/record-nexus-connect/internal/db"
	"github.com/trumanharry/record-nexus-connect/internal/models"
	"github.com/trumanharry/record-nexus-connect/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RecordHandler struct{}

func NewRecordHandler() *RecordHandler {
	return &RecordHandler{}
}

// newModel returns an empty record struct for the collection name
func newModel(recordType string) interface{} {
	switch recordType {
	case models.EntityCompany:
		return &models.Company{}
	case models.EntityHospital:
		return &models.Hospital{}
	case models.EntityContact:
		return &models.Contact{}
	case models.EntityPhysician:
		return &models.Physician{}
	}
	return nil
}

// newSlice returns an empty slice of the collection's record type
func newSlice(recordType string) interface{} {
	switch recordType {
	case models.EntityCompany:
		return &[]models.Company{}
	case models.EntityHospital:
		return &[]models.Hospital{}
	case models.EntityContact:
		return &[]models.Contact{}
	case models.EntityPhysician:
		return &[]models.Physician{}
	}
	return nil
}

// recordExists checks that a record uid resolves in its collection. Comments
// can also target user profiles, so "user" is a valid collection here.
func recordExists(recordType, uid string) bool {
	if recordType == models.EntityUser {
		var count int64
		db.DB.Model(&models.User{}).Where("uid = ?", uid).Count(&count)
		return count > 0
	}

	model := newModel(recordType)
	if model == nil {
		return false
	}
	var count int64
	db.DB.Model(model).Where("uid = ?", uid).Count(&count)
	return count > 0
}

// List - GET /api/records/:type
func (h *RecordHandler) List(c *gin.Context) {
	recordType := c.Param("type")
	slice := newSlice(recordType)
	if slice == nil {
		respondError(c, http.StatusBadRequest, "unknown record type")
		return
	}

	if err := db.DB.Order("updated_at DESC").Limit(200).Find(slice).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load records")
		return
	}

	c.JSON(http.StatusOK, slice)
}

// Get - GET /api/records/:type/:uid
func (h *RecordHandler) Get(c *gin.Context) {
	recordType := c.Param("type")
	uid := c.Param("uid")

	model := newModel(recordType)
	if model == nil {
		respondError(c, http.StatusBadRequest, "unknown record type")
		return
	}

	if err := db.DB.Where("uid = ?", uid).First(model).Error; err != nil {
		respondError(c, http.StatusNotFound, "record not found")
		return
	}

	// Star rating summary shown on the detail page
	var ratingCount int64
	var average float64
	db.DB.Model(&models.Rating{}).Where("record_uid = ?", uid).Count(&ratingCount)
	if ratingCount > 0 {
		db.DB.Model(&models.Rating{}).Where("record_uid = ?", uid).
			Select("AVG(score)").Scan(&average)
	}

	followed := false
	if user := currentUser(c); user != nil {
		followed = user.Following.Contains(uid)
	}

	c.JSON(http.StatusOK, gin.H{
		"record":       model,
		"rating":       average,
		"rating_count": ratingCount,
		"followed":     followed,
	})
}

// Create - POST /api/records/:type
func (h *RecordHandler) Create(c *gin.Context) {
	user := currentUser(c)
	recordType := c.Param("type")
	uid := uuid.NewString()

	var created interface{}

	switch recordType {
	case models.EntityCompany:
		var input models.Company
		if err := c.ShouldBindJSON(&input); err != nil || strings.TrimSpace(input.Name) == "" {
			respondError(c, http.StatusBadRequest, "company name is required")
			return
		}
		input.ID = 0
		input.Uid = uid
		input.CreatedBy = user.ID
		input.ModifiedBy = user.ID
		if err := db.DB.Create(&input).Error; err != nil {
			respondError(c, http.StatusInternalServerError, "failed to create record")
			return
		}
		created = input
	case models.EntityHospital:
		var input models.Hospital
		if err := c.ShouldBindJSON(&input); err != nil || strings.TrimSpace(input.Name) == "" {
			respondError(c, http.StatusBadRequest, "hospital name is required")
			return
		}
		input.ID = 0
		input.Uid = uid
		input.CreatedBy = user.ID
		input.ModifiedBy = user.ID
		if err := db.DB.Create(&input).Error; err != nil {
			respondError(c, http.StatusInternalServerError, "failed to create record")
			return
		}
		created = input
	case models.EntityContact:
		var input models.Contact
		if err := c.ShouldBindJSON(&input); err != nil || input.FirstName == "" || input.LastName == "" {
			respondError(c, http.StatusBadRequest, "contact first and last name are required")
			return
		}
		input.ID = 0
		input.Uid = uid
		input.CreatedBy = user.ID
		input.ModifiedBy = user.ID
		if err := db.DB.Create(&input).Error; err != nil {
			respondError(c, http.StatusInternalServerError, "failed to create record")
			return
		}
		created = input
	case models.EntityPhysician:
		var input models.Physician
		if err := c.ShouldBindJSON(&input); err != nil || input.FirstName == "" || input.LastName == "" {
			respondError(c, http.StatusBadRequest, "physician first and last name are required")
			return
		}
		input.ID = 0
		input.Uid = uid
		input.CreatedBy = user.ID
		input.ModifiedBy = user.ID
		if err := db.DB.Create(&input).Error; err != nil {
			respondError(c, http.StatusInternalServerError, "failed to create record")
			return
		}
		created = input
	default:
		respondError(c, http.StatusBadRequest, "unknown record type")
		return
	}

	// Adding a record earns points
	services.CreditPointsAsync(user.ID, services.PointsAddRecord, services.ReasonAddRecord)

	c.JSON(http.StatusCreated, created)
}

// Update - PUT /api/records/:type/:uid
func (h *RecordHandler) Update(c *gin.Context) {
	user := currentUser(c)
	recordType := c.Param("type")
	uid := c.Param("uid")

	switch recordType {
	case models.EntityCompany:
		var record models.Company
		if err := db.DB.Where("uid = ?", uid).First(&record).Error; err != nil {
			respondError(c, http.StatusNotFound, "record not found")
			return
		}
		var input models.Company
		if err := c.ShouldBindJSON(&input); err != nil || strings.TrimSpace(input.Name) == "" {
			respondError(c, http.StatusBadRequest, "company name is required")
			return
		}
		record.Name = input.Name
		record.Industry = input.Industry
		record.Website = input.Website
		record.Description = input.Description
		record.ModifiedBy = user.ID
		if err := db.DB.Save(&record).Error; err != nil {
			respondError(c, http.StatusInternalServerError, "failed to update record")
			return
		}
		h.notifyUpdate(user.ID, uid, recordType)
		c.JSON(http.StatusOK, record)
	case models.EntityHospital:
		var record models.Hospital
		if err := db.DB.Where("uid = ?", uid).First(&record).Error; err != nil {
			respondError(c, http.StatusNotFound, "record not found")
			return
		}
		var input models.Hospital
		if err := c.ShouldBindJSON(&input); err != nil || strings.TrimSpace(input.Name) == "" {
			respondError(c, http.StatusBadRequest, "hospital name is required")
			return
		}
		record.Name = input.Name
		record.Type = input.Type
		record.Beds = input.Beds
		record.Address = input.Address
		record.Website = input.Website
		record.Description = input.Description
		record.ModifiedBy = user.ID
		if err := db.DB.Save(&record).Error; err != nil {
			respondError(c, http.StatusInternalServerError, "failed to update record")
			return
		}
		h.notifyUpdate(user.ID, uid, recordType)
		c.JSON(http.StatusOK, record)
	case models.EntityContact:
		var record models.Contact
		if err := db.DB.Where("uid = ?", uid).First(&record).Error; err != nil {
			respondError(c, http.StatusNotFound, "record not found")
			return
		}
		var input models.Contact
		if err := c.ShouldBindJSON(&input); err != nil || input.FirstName == "" || input.LastName == "" {
			respondError(c, http.StatusBadRequest, "contact first and last name are required")
			return
		}
		record.FirstName = input.FirstName
		record.LastName = input.LastName
		record.Email = input.Email
		record.Phone = input.Phone
		record.Title = input.Title
		record.Company = input.Company
		record.ModifiedBy = user.ID
		if err := db.DB.Save(&record).Error; err != nil {
			respondError(c, http.StatusInternalServerError, "failed to update record")
			return
		}
		h.notifyUpdate(user.ID, uid, recordType)
		c.JSON(http.StatusOK, record)
	case models.EntityPhysician:
		var record models.Physician
		if err := db.DB.Where("uid = ?", uid).First(&record).Error; err != nil {
			respondError(c, http.StatusNotFound, "record not found")
			return
		}
		var input models.Physician
		if err := c.ShouldBindJSON(&input); err != nil || input.FirstName == "" || input.LastName == "" {
			respondError(c, http.StatusBadRequest, "physician first and last name are required")
			return
		}
		record.FirstName = input.FirstName
		record.LastName = input.LastName
		record.Specialty = input.Specialty
		record.HospitalAffiliation = input.HospitalAffiliation
		record.Email = input.Email
		record.Phone = input.Phone
		record.ModifiedBy = user.ID
		if err := db.DB.Save(&record).Error; err != nil {
			respondError(c, http.StatusInternalServerError, "failed to update record")
			return
		}
		h.notifyUpdate(user.ID, uid, recordType)
		c.JSON(http.StatusOK, record)
	default:
		respondError(c, http.StatusBadRequest, "unknown record type")
	}
}

func (h *RecordHandler) notifyUpdate(actorID uint, uid, recordType string) {
	go services.NotifyFollowers(actorID, uid, recordType, models.NotificationTypeUpdate,
		fmt.Sprintf("A %s record you follow was updated", recordType))
}

// Delete - DELETE /api/records/:type/:uid (administrators only, see router)
func (h *RecordHandler) Delete(c *gin.Context) {
	recordType := c.Param("type")
	uid := c.Param("uid")

	model := newModel(recordType)
	if model == nil {
		respondError(c, http.StatusBadRequest, "unknown record type")
		return
	}

	result := db.DB.Where("uid = ?", uid).Delete(model)
	if result.Error != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete record")
		return
	}
	if result.RowsAffected == 0 {
		respondError(c, http.StatusNotFound, "record not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
