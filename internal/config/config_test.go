package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	require.InDelta(t, 0.08, cfg.Pricing.TaxRate, 1e-9)
	require.InDelta(t, 15, cfg.Pricing.ShippingFlat, 1e-9)
	require.InDelta(t, 100, cfg.Pricing.FreeShippingOver, 1e-9)
	require.Equal(t, 16, cfg.HistoryCap)
	require.Equal(t, 250*time.Millisecond, cfg.RenderDebounce)
	require.Equal(t, "artisanCart", cfg.Storage.Key)
	require.Equal(t, "artisanCart.json", cfg.StorageFile())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TAX_RATE", "0.05")
	t.Setenv("SHIPPING_FLAT", "9.99")
	t.Setenv("HISTORY_CAP", "4")
	t.Setenv("RENDER_DEBOUNCE", "100")
	t.Setenv("CART_STORAGE_KEY", "testCart")

	cfg := Load()

	require.InDelta(t, 0.05, cfg.Pricing.TaxRate, 1e-9)
	require.InDelta(t, 9.99, cfg.Pricing.ShippingFlat, 1e-9)
	require.Equal(t, 4, cfg.HistoryCap)
	require.Equal(t, 100*time.Millisecond, cfg.RenderDebounce)
	require.Equal(t, "testCart.json", cfg.StorageFile())
}

func TestLoadSanitizesBadValues(t *testing.T) {
	t.Setenv("TAX_RATE", "1.5")
	t.Setenv("SHIPPING_FLAT", "-2")
	t.Setenv("HISTORY_CAP", "0")
	t.Setenv("RENDER_DEBOUNCE", "not-a-duration")

	cfg := Load()

	require.InDelta(t, 0.08, cfg.Pricing.TaxRate, 1e-9)
	require.InDelta(t, 15, cfg.Pricing.ShippingFlat, 1e-9)
	require.Equal(t, 16, cfg.HistoryCap)
	require.Equal(t, 250*time.Millisecond, cfg.RenderDebounce)
}

func TestStorageFileResolution(t *testing.T) {
	t.Run("explicit file path wins", func(t *testing.T) {
		t.Setenv("CART_STORAGE_PATH", "/tmp/my-cart.json")
		cfg := Load()
		require.Equal(t, "/tmp/my-cart.json", cfg.StorageFile())
	})

	t.Run("directory path gets the key as filename", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("CART_STORAGE_PATH", dir)
		cfg := Load()
		require.Equal(t, filepath.Join(dir, "artisanCart.json"), cfg.StorageFile())
	})
}

func TestDurationEnvAcceptsUnits(t *testing.T) {
	t.Setenv("RENDER_DEBOUNCE", "1.5s")
	cfg := Load()
	require.Equal(t, 1500*time.Millisecond, cfg.RenderDebounce)
}
