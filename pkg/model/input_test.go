package model_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/require"

	"github.com/schedbench/schedgen/internal/generator"
	"github.com/schedbench/schedgen/pkg/model"
)

func TestInstanceRoundTrip(t *testing.T) {
	// Arrange
	g := NewWithT(t)
	instance, _, err := generator.New(42).Generate(generator.Params{
		Courses: 20, Instructors: 10, Rooms: 8, Students: 100, Weeks: 10,
	})
	require.NoError(t, err)

	bytes, err := instance.ToJson()
	require.NoError(t, err)

	// Act
	decoded, err := model.InstanceFromBytes(bytes)

	// Assert: field-for-field structural equality after the round trip
	require.NoError(t, err)
	g.Expect(decoded).To(Equal(*instance))
}

func TestInstanceFromJson(t *testing.T) {
	g := NewWithT(t)
	instance, _, err := generator.New(7).Generate(generator.Params{
		Courses: 5, Instructors: 3, Rooms: 4, Students: 20, Weeks: 2,
	})
	require.NoError(t, err)

	bytes, err := instance.ToJson()
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "instance.json")
	require.NoError(t, os.WriteFile(path, bytes, 0666))

	decoded, err := model.InstanceFromJson(path)

	require.NoError(t, err)
	g.Expect(decoded.Metadata).To(Equal(instance.Metadata))
	g.Expect(decoded.Courses).To(HaveLen(5))
	g.Expect(decoded.Students).To(HaveLen(20))
}

func TestInstanceFromJsonMissingFile(t *testing.T) {
	_, err := model.InstanceFromJson("does_not_exist.json")
	require.Error(t, err)
}

func TestInstanceFromBytesMalformed(t *testing.T) {
	_, err := model.InstanceFromBytes([]byte("not json"))
	require.Error(t, err)
}
