package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestStorage 在临时 HOME 下打开 gdata 存储
func openTestStorage(t *testing.T, appName string) *gdata.Manager {
	t.Helper()

	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings == nil {
		t.Fatal("DefaultSettings() returned nil")
	}
	if !settings.EffectsEnabled {
		t.Error("EffectsEnabled: got false, want true")
	}
	if settings.LastDestination != "" {
		t.Errorf("LastDestination: got %q, want empty", settings.LastDestination)
	}
}

// TestNewSettingsManager 测试正常初始化 SettingsManager
func TestNewSettingsManager(t *testing.T) {
	sm := NewSettingsManager(openTestStorage(t, "test_settings"))

	settings := sm.GetSettings()
	if settings == nil {
		t.Fatal("GetSettings() returned nil after initialization")
	}
	if !settings.EffectsEnabled {
		t.Error("Initial EffectsEnabled: got false, want true")
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)

	sm.SetEffectsEnabled(false)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode: %v", err)
	}
	if sm.GetSettings().EffectsEnabled {
		t.Error("in-memory setting lost in degraded mode")
	}

	// 降级模式下重新加载回到默认值
	if err := sm.Load(); err != nil {
		t.Errorf("Load() in degraded mode: %v", err)
	}
	if !sm.GetSettings().EffectsEnabled {
		t.Error("Load() in degraded mode should reset to defaults")
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	storage := openTestStorage(t, "test_settings_load_save")

	sm1 := NewSettingsManager(storage)
	sm1.SetEffectsEnabled(false)
	sm1.SetLastDestination(PathSpecial)
	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2 := NewSettingsManager(storage)
	settings := sm2.GetSettings()
	if settings.EffectsEnabled {
		t.Error("Loaded EffectsEnabled: got true, want false")
	}
	if settings.LastDestination != PathSpecial {
		t.Errorf("Loaded LastDestination: got %q, want %q", settings.LastDestination, PathSpecial)
	}
}

// TestSettingsPartialData 缺少的字段使用默认值
func TestSettingsPartialData(t *testing.T) {
	storage := openTestStorage(t, "test_settings_partial")
	if err := storage.SaveObjectProp(settingsObject, settingsProperty, []byte("lastDestination: /general\n")); err != nil {
		t.Fatalf("SaveObjectProp: %v", err)
	}

	settings := NewSettingsManager(storage).GetSettings()
	if !settings.EffectsEnabled {
		t.Error("EffectsEnabled should default to true when absent")
	}
	if settings.LastDestination != PathGeneral {
		t.Errorf("LastDestination: got %q, want %q", settings.LastDestination, PathGeneral)
	}
}

// TestSettingsCorruptData 损坏的数据回退到默认设置
func TestSettingsCorruptData(t *testing.T) {
	storage := openTestStorage(t, "test_settings_corrupt")
	if err := storage.SaveObjectProp(settingsObject, settingsProperty, []byte("effectsEnabled: [not a bool")); err != nil {
		t.Fatalf("SaveObjectProp: %v", err)
	}

	sm := NewSettingsManager(storage)
	if !sm.GetSettings().EffectsEnabled {
		t.Error("corrupt data should fall back to defaults")
	}
	if err := sm.Load(); err == nil {
		t.Error("Load() should report corrupt data")
	}
}
