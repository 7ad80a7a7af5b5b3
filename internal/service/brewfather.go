package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/brewstation/backend/internal/metrics"
	"github.com/brewstation/backend/internal/models"
)

const (
	brewfatherBaseURL  = "https://api.brewfather.app/v2"
	brewfatherCacheTTL = 10 * time.Minute
	brewfatherPageSize = 50
)

var (
	ErrBrewfatherDisabled = errors.New("brewfather integration is not configured")
	ErrBrewfatherAPI      = errors.New("brewfather api request failed")
)

var brewfatherLogger = zerolog.New(os.Stdout).With().Timestamp().Str("service", "brewfather").Logger()

// BrewfatherService talks to the Brewfather v2 API and mirrors recipes into
// the local tables. API responses are cached in Redis so repeated syncs
// within the TTL do not hit the remote quota.
type BrewfatherService struct {
	db       *gorm.DB
	settings *SettingsService
	redis    *redis.Client
	client   *http.Client
	baseURL  string
}

func NewBrewfatherService(db *gorm.DB, settings *SettingsService, redisClient *redis.Client) *BrewfatherService {
	return &BrewfatherService{
		db:       db,
		settings: settings,
		redis:    redisClient,
		client:   &http.Client{Timeout: 30 * time.Second},
		baseURL:  brewfatherBaseURL,
	}
}

// brewfatherAPIRecipe is the slice of the remote recipe document we keep.
// Fermentable, hop and yeast arrays are stored verbatim; the pricing
// service parses them at calculation time.
type brewfatherAPIRecipe struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Style struct {
		Name string `json:"name"`
	} `json:"style"`
	ABV          float64                  `json:"abv"`
	IBU          float64                  `json:"ibu"`
	Color        float64                  `json:"color"`
	BatchSize    float64                  `json:"batchSize"`
	Efficiency   float64                  `json:"efficiency"`
	OG           float64                  `json:"og"`
	FG           float64                  `json:"fg"`
	Notes        string                   `json:"notes"`
	Fermentables []map[string]interface{} `json:"fermentables"`
	Hops         []map[string]interface{} `json:"hops"`
	Yeasts       []map[string]interface{} `json:"yeasts"`
}

func (s *BrewfatherService) credentials() (userID, apiKey string, err error) {
	if !s.settings.GetBool(models.SettingBrewfatherEnabled, false) {
		return "", "", ErrBrewfatherDisabled
	}
	userID = s.settings.GetString(models.SettingBrewfatherUserID, "")
	apiKey = s.settings.GetString(models.SettingBrewfatherAPIKey, "")
	if userID == "" || apiKey == "" {
		return "", "", ErrBrewfatherDisabled
	}
	return userID, apiKey, nil
}

// fetchJSON performs an authenticated GET against the Brewfather API,
// consulting the Redis cache first.
func (s *BrewfatherService) fetchJSON(ctx context.Context, path string, out interface{}) error {
	cacheKey := "brewfather:" + path

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Bytes(); err == nil {
			return json.Unmarshal(cached, out)
		}
	}

	userID, apiKey, err := s.credentials()
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.SetBasicAuth(userID, apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrewfatherAPI, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrBrewfatherAPI, resp.StatusCode)
	}

	var body json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("%w: %v", ErrBrewfatherAPI, err)
	}

	if s.redis != nil {
		if err := s.redis.Set(ctx, cacheKey, []byte(body), brewfatherCacheTTL).Err(); err != nil {
			brewfatherLogger.Warn().Err(err).Str("key", cacheKey).Msg("caching response failed")
		}
	}

	return json.Unmarshal(body, out)
}

// SyncRecipes pulls recipes from the Brewfather API and upserts them into
// the local mirror. Every run is recorded as a BrewfatherSync row.
func (s *BrewfatherService) SyncRecipes(ctx context.Context) (*models.BrewfatherSync, error) {
	sync := models.BrewfatherSync{SyncType: "recipes", Status: "pending"}

	var remote []brewfatherAPIRecipe
	path := fmt.Sprintf("/recipes?limit=%d&complete=true", brewfatherPageSize)
	if err := s.fetchJSON(ctx, path, &remote); err != nil {
		sync.Status = "error"
		sync.ErrorMessage = err.Error()
		_ = s.db.Create(&sync).Error
		metrics.BrewfatherSyncsTotal.WithLabelValues("error").Inc()
		return &sync, err
	}

	count := 0
	for _, r := range remote {
		if err := s.upsertRecipe(r); err != nil {
			brewfatherLogger.Error().Err(err).Str("brewfather_id", r.ID).Msg("upsert failed")
			continue
		}
		count++
	}

	now := time.Now()
	sync.Status = "success"
	sync.LastSync = &now
	sync.ItemsCount = count
	if err := s.db.Create(&sync).Error; err != nil {
		return nil, err
	}

	metrics.BrewfatherSyncsTotal.WithLabelValues("success").Inc()
	brewfatherLogger.Info().Int("items", count).Msg("recipe sync complete")
	return &sync, nil
}

func (s *BrewfatherService) upsertRecipe(r brewfatherAPIRecipe) error {
	ingredients := models.JSONMap{
		"fermentables": r.Fermentables,
		"hops":         r.Hops,
		"yeasts":       r.Yeasts,
	}

	var existing models.BrewfatherRecipe
	err := s.db.Where("brewfather_id = ?", r.ID).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		record := models.BrewfatherRecipe{
			BrewfatherID:      r.ID,
			Name:              r.Name,
			Style:             r.Style.Name,
			ABV:               r.ABV,
			IBU:               r.IBU,
			ColorEBC:          r.Color,
			BatchSizeLiters:   r.BatchSize,
			EfficiencyPercent: r.Efficiency,
			OriginalGravity:   r.OG,
			FinalGravity:      r.FG,
			Ingredients:       ingredients,
			Notes:             r.Notes,
			Active:            true,
			SynchronizedAt:    time.Now(),
		}
		return s.db.Create(&record).Error
	case err != nil:
		return err
	}

	existing.Name = r.Name
	existing.Style = r.Style.Name
	existing.ABV = r.ABV
	existing.IBU = r.IBU
	existing.ColorEBC = r.Color
	existing.BatchSizeLiters = r.BatchSize
	existing.EfficiencyPercent = r.Efficiency
	existing.OriginalGravity = r.OG
	existing.FinalGravity = r.FG
	existing.Ingredients = ingredients
	existing.Notes = r.Notes
	existing.SynchronizedAt = time.Now()
	return s.db.Save(&existing).Error
}

// ListRecipes returns the locally mirrored Brewfather recipes.
func (s *BrewfatherService) ListRecipes() ([]models.BrewfatherRecipe, error) {
	var recipes []models.BrewfatherRecipe
	if err := s.db.Where("active = ?", true).Order("name asc").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// LastSync returns the most recent sync record for the given type.
func (s *BrewfatherService) LastSync(syncType string) (*models.BrewfatherSync, error) {
	var sync models.BrewfatherSync
	err := s.db.Where("sync_type = ?", syncType).Order("created_at desc").First(&sync).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sync, nil
}
