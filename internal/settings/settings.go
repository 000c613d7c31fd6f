// Package settings models the device preferences. They live in a plain
// string key/value store (AsyncStorage on device, a per-user table here) and
// never hold journal or goal content.
package settings

import "strconv"

// Theme selection.
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// Storage keys.
const (
	KeyTheme            = "theme"
	KeyRemindersEnabled = "remindersEnabled"
	KeyReminderTime     = "reminderTime"
	KeyPasscodeEnabled  = "passcodeEnabled"
)

// Store is the key/value contract the settings survive through.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Settings are the user-tunable preferences with their defaults.
type Settings struct {
	Theme            string `json:"theme"`
	RemindersEnabled bool   `json:"remindersEnabled"`
	ReminderTime     string `json:"reminderTime"`
	PasscodeEnabled  bool   `json:"passcodeEnabled"`
}

// Defaults returns the out-of-the-box preferences.
func Defaults() Settings {
	return Settings{
		Theme:            ThemeSystem,
		RemindersEnabled: true,
		ReminderTime:     "9:00 PM",
		PasscodeEnabled:  false,
	}
}

// Load reads the settings from a store, falling back to defaults for any
// missing or unreadable key.
func Load(store Store) Settings {
	s := Defaults()
	if v, ok := store.Get(KeyTheme); ok && validTheme(v) {
		s.Theme = v
	}
	if v, ok := store.Get(KeyRemindersEnabled); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			s.RemindersEnabled = b
		}
	}
	if v, ok := store.Get(KeyReminderTime); ok && v != "" {
		s.ReminderTime = v
	}
	if v, ok := store.Get(KeyPasscodeEnabled); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			s.PasscodeEnabled = b
		}
	}
	return s
}

// Save writes every setting back to the store.
func (s Settings) Save(store Store) error {
	pairs := map[string]string{
		KeyTheme:            s.Theme,
		KeyRemindersEnabled: strconv.FormatBool(s.RemindersEnabled),
		KeyReminderTime:     s.ReminderTime,
		KeyPasscodeEnabled:  strconv.FormatBool(s.PasscodeEnabled),
	}
	for k, v := range pairs {
		if err := store.Set(k, v); err != nil {
			return err
		}
	}
	return nil
}

func validTheme(v string) bool {
	return v == ThemeLight || v == ThemeDark || v == ThemeSystem
}

// MemoryStore is an in-process Store, used by tests and as the fallback when
// no database is wired.
type MemoryStore struct {
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryStore) Set(key, value string) error {
	m.values[key] = value
	return nil
}
