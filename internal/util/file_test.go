package util

import (
	"github.com/stretchr/testify/assert"
	"os"
	"path/filepath"
	"testing"
)

func skipIfNotRoot(t *testing.T) {
	if os.Geteuid() != 0 {
		t.Skip("changing file ownership requires root")
	}
}

func createTestFile(t *testing.T, perm os.FileMode, uid, gid int) string {
	filePath := filepath.Join(t.TempDir(), "testfile")
	file, err := os.OpenFile(filePath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, perm)
	assert.NoError(t, err)
	defer file.Close()
	err = os.Chown(filePath, uid, gid)
	assert.NoError(t, err)
	err = os.Chmod(filePath, perm)
	assert.NoError(t, err)
	return filePath
}

func TestFileHasPermissionsUserIsRoot(t *testing.T) {
	skipIfNotRoot(t)

	// GIVEN
	filePath := createTestFile(t, 0o700, 0, 1000)

	// WHEN
	result, err := CheckFilePermissionsForExecution(filePath)

	// THEN
	assert.Equal(t, true, result)
	assert.NoError(t, err)
}

func TestFileHasPermissionsGroupIsRootAndHasWrite(t *testing.T) {
	skipIfNotRoot(t)

	// GIVEN
	filePath := createTestFile(t, 0o770, 0, 0)

	// WHEN
	result, err := CheckFilePermissionsForExecution(filePath)

	// THEN
	assert.Equal(t, true, result)
	assert.NoError(t, err)
}

func TestFileHasPermissionsGroupOtherThanRootHasWritePermission(t *testing.T) {
	skipIfNotRoot(t)

	// GIVEN
	filePath := createTestFile(t, 0o720, 0, 1000)

	// WHEN
	result, err := CheckFilePermissionsForExecution(filePath)

	// THEN
	assert.Equal(t, false, result)
	assert.Error(t, err)
}

func TestFileHasPermissionsOtherHasWritePermission(t *testing.T) {
	skipIfNotRoot(t)

	// GIVEN
	filePath := createTestFile(t, 0o702, 0, 1000)

	// WHEN
	result, err := CheckFilePermissionsForExecution(filePath)

	// THEN
	assert.Equal(t, false, result)
	assert.Error(t, err)
}

func TestFileHasPermissionsFileNotFound(t *testing.T) {
	// GIVEN
	filePath := filepath.Join(t.TempDir(), "missing")

	// WHEN
	result, err := CheckFilePermissionsForExecution(filePath)

	// THEN
	assert.Equal(t, false, result)
	assert.Error(t, err)
}

func TestWriteFileAtomic(t *testing.T) {
	// GIVEN
	filePath := filepath.Join(t.TempDir(), "radiator.yaml")
	err := os.WriteFile(filePath, []byte("old"), 0o644)
	assert.NoError(t, err)

	// WHEN
	err = WriteFileAtomic(filePath, []byte("pollDelay: 1s\n"))

	// THEN
	assert.NoError(t, err)
	data, err := os.ReadFile(filePath)
	assert.NoError(t, err)
	assert.Equal(t, "pollDelay: 1s\n", string(data))
}
