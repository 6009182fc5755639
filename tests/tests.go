// Package tests provides helpers for carrying test metadata (a unique id and
// the test name) through context.Context, so concurrent tests can correlate
// log lines and externally visible effects with the test that produced them.
package tests

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

// contextKey is a private type for the context keys below, preventing
// collisions with other packages.
type contextKey string

const (
	testIdKey   contextKey = "testId"
	testNameKey contextKey = "testName"
)

// Info holds the metadata attached by GetUniqueContext.
type Info struct {
	Id   string
	Name string
}

// GetUniqueContext derives a context from t.Context() carrying a unique test
// id (a "test-" prefixed UUID) and the test's name.
func GetUniqueContext(t *testing.T) context.Context {
	t.Helper()

	ctx := context.WithValue(context.Background(), testIdKey, "test-"+uuid.NewString())

	return context.WithValue(ctx, testNameKey, t.Name())
}

// GetTestInfo extracts the test metadata from a context produced by
// GetUniqueContext. The second return value reports whether the context
// carried any.
func GetTestInfo(ctx context.Context) (Info, bool) {
	id, idOk := ctx.Value(testIdKey).(string)
	name, nameOk := ctx.Value(testNameKey).(string)

	if !idOk && !nameOk {
		return Info{}, false
	}

	return Info{Id: id, Name: name}, true
}
