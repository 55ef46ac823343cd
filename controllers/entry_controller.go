package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/zmrishh/regret-note/models"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// entriesCacheKey holds the serialized GET /api/entries payload.
const entriesCacheKey = "cache:entries"

// entriesCacheTTL bounds staleness if an invalidation is ever missed.
const entriesCacheTTL = 60 * time.Second

// EntryController handles CRUD over journal entries.
type EntryController struct {
	db     *gorm.DB
	cache  *redis.Client
	logger *zap.SugaredLogger
}

// NewEntryController creates an EntryController. cache may be nil, in which
// case every list request goes to the database.
func NewEntryController(db *gorm.DB, cache *redis.Client, logger *zap.SugaredLogger) *EntryController {
	return &EntryController{db: db, cache: cache, logger: logger}
}

// ListEntries handles GET /api/entries. Entries come back newest first.
func (ec *EntryController) ListEntries(c *gin.Context) {
	if data, ok := ec.cachedList(c.Request.Context()); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", data)
		return
	}

	var entries []models.Entry
	if err := ec.db.Order("created_at desc").Find(&entries).Error; err != nil {
		ec.logger.Errorw("failed to list entries", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list entries"})
		return
	}

	records := make([]map[string]interface{}, 0, len(entries))
	for i := range entries {
		records = append(records, entries[i].ToRecord())
	}

	ec.storeList(c.Request.Context(), records)
	c.JSON(http.StatusOK, records)
}

// CreateEntry handles POST /api/entries.
func (ec *EntryController) CreateEntry(c *gin.Context) {
	var req models.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "must include content"})
		return
	}
	if req.Content == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "must include content"})
		return
	}

	entry := req.ToEntry()
	if err := ec.db.Create(&entry).Error; err != nil {
		ec.logger.Errorw("failed to create entry", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create entry"})
		return
	}

	ec.invalidateList(c.Request.Context())
	c.JSON(http.StatusCreated, entry.ToRecord())
}

// GetEntry handles GET /api/entries/:id.
func (ec *EntryController) GetEntry(c *gin.Context) {
	entry, ok := ec.findEntry(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, entry.ToRecord())
}

// UpdateEntry handles PUT /api/entries/:id. Only content, mood, intensity and
// is_anonymous are writable; entry_type and user_id stay as created.
func (ec *EntryController) UpdateEntry(c *gin.Context) {
	entry, ok := ec.findEntry(c)
	if !ok {
		return
	}

	// An empty body is a valid no-op update.
	var req models.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	req.ApplyTo(&entry)
	if err := ec.db.Save(&entry).Error; err != nil {
		ec.logger.Errorw("failed to update entry", "error", err, "id", entry.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update entry"})
		return
	}

	ec.invalidateList(c.Request.Context())
	c.JSON(http.StatusOK, entry.ToRecord())
}

// DeleteEntry handles DELETE /api/entries/:id.
func (ec *EntryController) DeleteEntry(c *gin.Context) {
	entry, ok := ec.findEntry(c)
	if !ok {
		return
	}

	if err := ec.db.Delete(&entry).Error; err != nil {
		ec.logger.Errorw("failed to delete entry", "error", err, "id", entry.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete entry"})
		return
	}

	ec.invalidateList(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// findEntry resolves the :id path param to an entry, writing a 404 and
// returning ok=false when it does not exist.
func (ec *EntryController) findEntry(c *gin.Context) (models.Entry, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
		return models.Entry{}, false
	}

	var entry models.Entry
	if err := ec.db.First(&entry, id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			ec.logger.Errorw("failed to fetch entry", "error", err, "id", id)
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
		return models.Entry{}, false
	}
	return entry, true
}

// cachedList returns the cached list payload, if the cache is wired and warm.
func (ec *EntryController) cachedList(ctx context.Context) ([]byte, bool) {
	if ec.cache == nil {
		return nil, false
	}
	data, err := ec.cache.Get(ctx, entriesCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			ec.logger.Warnw("entries cache read failed", "error", err)
		}
		return nil, false
	}
	return data, true
}

func (ec *EntryController) storeList(ctx context.Context, records []map[string]interface{}) {
	if ec.cache == nil {
		return
	}
	data, err := json.Marshal(records)
	if err != nil {
		return
	}
	if err := ec.cache.Set(ctx, entriesCacheKey, data, entriesCacheTTL).Err(); err != nil {
		ec.logger.Warnw("entries cache write failed", "error", err)
	}
}

func (ec *EntryController) invalidateList(ctx context.Context) {
	if ec.cache == nil {
		return
	}
	if err := ec.cache.Del(ctx, entriesCacheKey).Err(); err != nil {
		ec.logger.Warnw("entries cache invalidation failed", "error", err)
	}
}
