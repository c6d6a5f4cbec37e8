// Package mocks provides centralized mock implementations for testing.
//
// Instead of defining inline fakes in individual test files, tests import the
// standardized mocks from here so that call tracking and canned failures behave
// the same everywhere.
//
// Usage:
//
//	import "github.com/phrazzld/copygen-api/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    provider := mocks.NewMockProviderWithText("Generated copy")
//
//	    // Use the mock in your test, then inspect provider.CallCount()...
//	}
package mocks
