package composables

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/itam-labs/assetdesk/pkg/configuration"
	"github.com/itam-labs/assetdesk/pkg/constants"
)

// UseLogger returns the request-scoped logger entry, falling back to the
// configuration logger when the middleware did not run.
func UseLogger(ctx context.Context) *logrus.Entry {
	if entry, ok := ctx.Value(constants.LoggerKey).(*logrus.Entry); ok {
		return entry
	}
	return logrus.NewEntry(configuration.Use().Logger())
}

func WithLogger(ctx context.Context, entry *logrus.Entry) context.Context {
	return context.WithValue(ctx, constants.LoggerKey, entry)
}
