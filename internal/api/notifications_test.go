package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewstation/backend/internal/models"
)

func TestNotificationsRequireAuth(t *testing.T) {
	router, _ := SetupTestRouter(t)

	w := PerformRequest(router, http.MethodGet, "/api/v1/notifications", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = PerformRequest(router, http.MethodPost, "/api/v1/notifications", "", map[string]interface{}{"message": "hi"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateNotification(t *testing.T) {
	router, testDB := SetupTestRouter(t)
	userID, token := CreateTestUserAndToken(t, testDB)

	w := PerformRequest(router, http.MethodPost, "/api/v1/notifications", token, map[string]interface{}{
		"message": "Brewfather sync finished",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Notification
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Brewfather sync finished", created.Message)
	assert.Equal(t, "info", created.Type)
	assert.Equal(t, userID, created.UserID)
	assert.False(t, created.IsRead)
}

func TestCreateNotificationRequiresMessage(t *testing.T) {
	router, testDB := SetupTestRouter(t)
	_, token := CreateTestUserAndToken(t, testDB)

	w := PerformRequest(router, http.MethodPost, "/api/v1/notifications", token, map[string]interface{}{
		"title": "no body",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "message is required")
}

func TestListNotificationsPaginatesAndCounts(t *testing.T) {
	router, testDB := SetupTestRouter(t)
	_, token := CreateTestUserAndToken(t, testDB)

	for i := 0; i < 3; i++ {
		w := PerformRequest(router, http.MethodPost, "/api/v1/notifications", token, map[string]interface{}{
			"message": "n",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := PerformRequest(router, http.MethodGet, "/api/v1/notifications?page=1&per_page=2", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var page struct {
		Notifications []models.Notification `json:"notifications"`
		Total         int64                 `json:"total"`
		Pages         int64                 `json:"pages"`
		CurrentPage   int                   `json:"current_page"`
		UnreadCount   int64                 `json:"unread_count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Len(t, page.Notifications, 2)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, int64(2), page.Pages)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, int64(3), page.UnreadCount)
}

func TestMarkNotificationRead(t *testing.T) {
	router, testDB := SetupTestRouter(t)
	_, token := CreateTestUserAndToken(t, testDB)

	w := PerformRequest(router, http.MethodPost, "/api/v1/notifications", token, map[string]interface{}{
		"message": "fermenter F1 is offline",
		"type":    "warning",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Notification
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = PerformRequest(router, http.MethodPut, "/api/v1/notifications/"+created.ID.String()+"/read", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.Notification
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.True(t, updated.IsRead)

	// Unread filter no longer returns it.
	w = PerformRequest(router, http.MethodGet, "/api/v1/notifications?unread_only=true", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), created.ID.String())
}

func TestMarkNotificationReadOtherUser(t *testing.T) {
	router, testDB := SetupTestRouter(t)
	_, ownerToken := CreateTestUserAndToken(t, testDB)
	_, otherToken := CreateTestUserAndToken(t, testDB)

	w := PerformRequest(router, http.MethodPost, "/api/v1/notifications", ownerToken, map[string]interface{}{
		"message": "private",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Notification
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = PerformRequest(router, http.MethodPut, "/api/v1/notifications/"+created.ID.String()+"/read", otherToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = PerformRequest(router, http.MethodGet, "/api/v1/notifications", otherToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), created.ID.String())
}

func TestMarkAllNotificationsRead(t *testing.T) {
	router, testDB := SetupTestRouter(t)
	_, token := CreateTestUserAndToken(t, testDB)

	for i := 0; i < 2; i++ {
		w := PerformRequest(router, http.MethodPost, "/api/v1/notifications", token, map[string]interface{}{
			"message": "n",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := PerformRequest(router, http.MethodPut, "/api/v1/notifications/read-all", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var result struct {
		UpdatedCount int64 `json:"updated_count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, int64(2), result.UpdatedCount)
}

func TestDeleteNotificationMovesToTrash(t *testing.T) {
	router, testDB := SetupTestRouter(t)
	_, token := CreateTestUserAndToken(t, testDB)

	w := PerformRequest(router, http.MethodPost, "/api/v1/notifications", token, map[string]interface{}{
		"message": "done with this",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Notification
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = PerformRequest(router, http.MethodDelete, "/api/v1/notifications/"+created.ID.String(), token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	var trash models.NotificationTrash
	require.NoError(t, testDB.DB.First(&trash, "original_notification_id = ?", created.ID.String()).Error)
	assert.Equal(t, "done with this", trash.Message)

	w = PerformRequest(router, http.MethodDelete, "/api/v1/notifications/"+created.ID.String(), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteNotificationInvalidID(t *testing.T) {
	router, testDB := SetupTestRouter(t)
	_, token := CreateTestUserAndToken(t, testDB)

	w := PerformRequest(router, http.MethodDelete, "/api/v1/notifications/not-a-uuid", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClearAllNotifications(t *testing.T) {
	router, testDB := SetupTestRouter(t)
	_, token := CreateTestUserAndToken(t, testDB)

	for i := 0; i < 3; i++ {
		w := PerformRequest(router, http.MethodPost, "/api/v1/notifications", token, map[string]interface{}{
			"message": "n",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := PerformRequest(router, http.MethodDelete, "/api/v1/notifications", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var result struct {
		ClearedCount int64 `json:"cleared_count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, int64(3), result.ClearedCount)

	w = PerformRequest(router, http.MethodGet, "/api/v1/notifications", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":0`)
}

func TestNotificationStatsEndpoint(t *testing.T) {
	router, testDB := SetupTestRouter(t)
	_, token := CreateTestUserAndToken(t, testDB)

	for _, kind := range []string{"info", "info", "error"} {
		w := PerformRequest(router, http.MethodPost, "/api/v1/notifications", token, map[string]interface{}{
			"message": "n",
			"type":    kind,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := PerformRequest(router, http.MethodGet, "/api/v1/notifications/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		Total  int64            `json:"total"`
		Unread int64            `json:"unread"`
		Read   int64            `json:"read"`
		ByType map[string]int64 `json:"by_type"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(3), stats.Unread)
	assert.Equal(t, int64(2), stats.ByType["info"])
	assert.Equal(t, int64(1), stats.ByType["error"])
}
