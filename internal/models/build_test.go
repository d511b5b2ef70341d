package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_BuildInformation_VersionString(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		buildInfo BuildInformation
		version   string
	}{
		"release": {
			buildInfo: BuildInformation{Version: "v1.2.0", Commit: "0123456789"},
			version:   "v1.2.0",
		},
		"latest with commit": {
			buildInfo: BuildInformation{Version: "latest", Commit: "0123456789"},
			version:   "latest-0123456",
		},
		"latest with unknown commit": {
			buildInfo: BuildInformation{Version: "latest", Commit: "ab"},
			version:   "latest",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.version, testCase.buildInfo.VersionString())
		})
	}
}

func Test_BuildInformation_String(t *testing.T) {
	t.Parallel()

	buildInfo := BuildInformation{Version: "v1.2.0", Commit: "abc", Date: "2024-01-01"}

	assert.Equal(t, "ip-locator v1.2.0 (commit abc built on 2024-01-01)", buildInfo.String())
}
