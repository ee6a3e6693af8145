package controllers_test

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"glamora-backend/config"
	"glamora-backend/controllers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServicesGroupedInFixedCategoryOrder(t *testing.T) {
	srv := newTestServer(t)
	seedService(t, "Classic Manicure", "Nails", "15.00")
	seedService(t, "Classic Haircut", "Hair", "25.00")
	seedService(t, "Eyebrow Threading", "Threading", "8.00")

	w := srv.get("/services")
	require.Equal(t, http.StatusOK, w.Code)
	grouped := decode(t, w)["services_by_category"].([]interface{})
	require.Len(t, grouped, 3)

	// Empty categories are omitted; the rest keep the display order.
	assert.Equal(t, "Hair", grouped[0].(map[string]interface{})["category"])
	assert.Equal(t, "Threading", grouped[1].(map[string]interface{})["category"])
	assert.Equal(t, "Nails", grouped[2].(map[string]interface{})["category"])
}

func TestServicesOmitInactive(t *testing.T) {
	srv := newTestServer(t)
	seedService(t, "Classic Haircut", "Hair", "25.00")
	retired := seedService(t, "Retired Perm", "Hair", "40.00")
	require.NoError(t, config.DB.Model(&retired).Update("is_active", false).Error)

	w := srv.get("/services")
	require.Equal(t, http.StatusOK, w.Code)
	grouped := decode(t, w)["services_by_category"].([]interface{})
	require.Len(t, grouped, 1)
	services := grouped[0].(map[string]interface{})["services"].([]interface{})
	require.Len(t, services, 1)
	assert.Equal(t, "Classic Haircut", services[0].(map[string]interface{})["name"])
}

func TestHomeReturnsPopularAndSuggestions(t *testing.T) {
	srv := newTestServer(t)
	for _, name := range []string{"Classic Haircut", "Hair Color", "Hydra Facial"} {
		seedService(t, name, "Hair", "25.00")
	}

	w := srv.get("/home")
	require.Equal(t, http.StatusOK, w.Code)
	out := decode(t, w)
	assert.Len(t, out["popular_services"].([]interface{}), 3)
	assert.Len(t, out["search_suggestions"].([]interface{}), 3)
	assert.EqualValues(t, 3, out["total_services"])
}

func TestSearchMatchesSubstringCaseInsensitive(t *testing.T) {
	srv := newTestServer(t)
	seedService(t, "Classic Haircut", "Hair", "25.00")
	seedService(t, "Classic Manicure", "Nails", "15.00")

	w := srv.get("/search?q=HAIR")
	require.Equal(t, http.StatusOK, w.Code)
	out := decode(t, w)
	assert.EqualValues(t, 1, out["results_count"])
	results := out["services"].([]interface{})
	assert.Equal(t, "Classic Haircut", results[0].(map[string]interface{})["name"])
	assert.Equal(t, "$25.00", results[0].(map[string]interface{})["price"])
}

func TestServiceImageKeywordMapping(t *testing.T) {
	t.Setenv("ASSETS_DIR", "")

	cases := []struct {
		name string
		want string
	}{
		{"Eyebrow Threading", "/service-images/eyebrow%20threading.jpeg"},
		{"Classic Haircut", "/service-images/hair%20cut%20img.webp"},
		{"Hydra Facial", "/service-images/Hydra%20Facial.jpeg"},
		{"Something Unmapped", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, controllers.ServiceImage(tc.name), tc.name)
	}
}

func TestServiceImageURLIsServedByRouter(t *testing.T) {
	assetsDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(assetsDir, "service images"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(assetsDir, "service images", "Facial.jpeg"), []byte("jpeg bytes"), 0o644))
	t.Setenv("ASSETS_DIR", assetsDir)

	srv := newTestServer(t)
	imageURL := controllers.ServiceImage("Relaxing Facial")
	require.Equal(t, "/service-images/Facial.jpeg", imageURL)

	// The URL returned for a service must resolve through the router.
	w := srv.get(imageURL)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jpeg bytes", w.Body.String())

	// An unmatched keyword with no backing file yields no URL at all.
	assert.Empty(t, controllers.ServiceImage("Classic Haircut"))
}
