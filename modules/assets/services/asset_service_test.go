package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itam-labs/assetdesk/modules/assets/domain/asset"
	"github.com/itam-labs/assetdesk/pkg/serrors"
)

func TestAssetCreate_RequiresTag(t *testing.T) {
	svc := NewAssetService(nil, nil)

	for _, tag := range []string{"", "   "} {
		_, err := svc.Create(context.Background(), &asset.Asset{AssetTag: tag, Model: "XPS"})
		require.Error(t, err)
		assert.True(t, serrors.Is(err, serrors.KindInvalidInput))
	}
}

func TestAssetUpdate_RequiresTag(t *testing.T) {
	svc := NewAssetService(nil, nil)

	err := svc.Update(context.Background(), &asset.Asset{ID: 1, Model: "XPS"})
	require.Error(t, err)
	assert.True(t, serrors.Is(err, serrors.KindInvalidInput))
}
