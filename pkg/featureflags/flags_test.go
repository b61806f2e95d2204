package featureflags

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStructuredLinkRewriter_DisabledByDefault(t *testing.T) {
	manager := NewEnvManager("TEST_FEATURE_")
	ctx := context.Background()

	assert.False(t, manager.IsEnabled(ctx, StructuredLinkRewriter))
}

func TestAuthorshipEnwikiOnly_EnabledWhenFlagSet(t *testing.T) {
	os.Setenv("TEST_FEATURE_AUTHORSHIP_ENWIKI_ONLY", "true")
	defer os.Unsetenv("TEST_FEATURE_AUTHORSHIP_ENWIKI_ONLY")

	manager := NewEnvManager("TEST_FEATURE_")
	ctx := context.Background()

	assert.True(t, manager.IsEnabled(ctx, AuthorshipEnwikiOnly))
}

func TestEnvManager_MultipleValues(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"true lowercase", "true", true},
		{"TRUE uppercase", "TRUE", true},
		{"1 numeric", "1", true},
		{"enabled", "enabled", true},
		{"ENABLED", "ENABLED", true},
		{"false", "false", false},
		{"0", "0", false},
		{"empty", "", false},
		{"other", "yes", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Setenv("TEST_FLAG", tt.value)
			defer os.Unsetenv("TEST_FLAG")

			manager := NewEnvManager("TEST_")
			ctx := context.Background()

			assert.Equal(t, tt.expected, manager.IsEnabled(ctx, "FLAG"))
		})
	}
}

func TestEnvManager_OverrideTakesPrecedence(t *testing.T) {
	os.Setenv("TEST_FEATURE_CACHE_ENABLED", "true")
	defer os.Unsetenv("TEST_FEATURE_CACHE_ENABLED")

	manager := NewEnvManager("TEST_FEATURE_")
	ctx := context.Background()
	assert.True(t, manager.IsEnabled(ctx, CacheEnabled))

	manager.SetEnabled(CacheEnabled, false)
	assert.False(t, manager.IsEnabled(ctx, CacheEnabled))
}

func TestEnvManager_GetAllFlags(t *testing.T) {
	manager := NewEnvManager("TEST_ALL_")
	manager.SetEnabled(RateLimitEnabled, true)

	flags := manager.GetAllFlags()

	assert.Len(t, flags, len(AllFlags))
	assert.True(t, flags[RateLimitEnabled])
	assert.False(t, flags[StructuredLinkRewriter])
}

func TestStaticManager(t *testing.T) {
	manager := NewStaticManager(map[FeatureFlag]bool{CacheEnabled: true})
	ctx := context.Background()

	assert.True(t, manager.IsEnabled(ctx, CacheEnabled))
	assert.False(t, manager.IsEnabled(ctx, AuthorshipEnwikiOnly))

	manager.SetEnabled(AuthorshipEnwikiOnly, true)
	all := manager.GetAllFlags()
	assert.True(t, all[AuthorshipEnwikiOnly])

	all[CacheEnabled] = false
	assert.True(t, manager.IsEnabled(ctx, CacheEnabled), "GetAllFlags must return a copy")
}

func TestContextManager(t *testing.T) {
	ctx := context.Background()
	assert.False(t, IsEnabled(ctx, CacheEnabled), "no manager in context disables everything")

	ctx = WithManager(ctx, NewStaticManager(map[FeatureFlag]bool{CacheEnabled: true}))
	assert.True(t, IsEnabled(ctx, CacheEnabled))
}
