package supabase

import (
	"fsanano/listing-admin/internal/config"
)

// NewAdmin builds a service-role handle from SUPABASE_URL and
// SUPABASE_SERVICE_ROLE_KEY. Server-side use only: the key bypasses row level
// security. Every call re-reads src and returns a fresh handle.
func NewAdmin(src config.Source) (*Client, error) {
	url, err := config.Get(src, config.EnvSupabaseURL)
	if err != nil {
		return nil, err
	}
	key, err := config.Get(src, config.EnvSupabaseServiceRoleKey)
	if err != nil {
		return nil, err
	}

	return NewClient(url, key, Options{
		Auth: AuthOptions{
			PersistSession:   false,
			AutoRefreshToken: false,
		},
	})
}

func NewAdminFromEnv() (*Client, error) {
	return NewAdmin(config.EnvSource{})
}
