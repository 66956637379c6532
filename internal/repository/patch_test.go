package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"sec-platform/dto"
	"sec-platform/internal/apperr"
	"sec-platform/internal/models"
)

func strPtr(s string) *string { return &s }

func TestParseID(t *testing.T) {
	want := bson.NewObjectID()

	got, err := parseID(want.Hex())
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = parseID("not-an-id")
	assert.True(t, apperr.IsInvalidID(err))
}

func TestParseIDs(t *testing.T) {
	a, b := bson.NewObjectID(), bson.NewObjectID()

	got, err := parseIDs([]string{a.Hex(), b.Hex()})
	require.NoError(t, err)
	assert.Equal(t, []bson.ObjectID{a, b}, got)

	_, err = parseIDs([]string{a.Hex(), "zzz"})
	assert.True(t, apperr.IsInvalidID(err))

	got, err = parseIDs(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPrefixFields(t *testing.T) {
	fields := bson.M{"name": "Math 102", "teacher_id": bson.NewObjectID()}

	out := prefixFields("classes.$[cls].", fields)

	assert.Len(t, out, 2)
	assert.Equal(t, "Math 102", out["classes.$[cls].name"])
	assert.Contains(t, out, "classes.$[cls].teacher_id")
	// original map untouched
	assert.Contains(t, fields, "name")
}

func TestInstitutionFieldsDropsAbsent(t *testing.T) {
	fields, err := InstitutionFields(dto.UpdateInstitutionReq{Name: strPtr("XYZ University")})
	require.NoError(t, err)

	assert.Equal(t, bson.M{"name": "XYZ University"}, fields)
}

func TestInstitutionFieldsEmpty(t *testing.T) {
	fields, err := InstitutionFields(dto.UpdateInstitutionReq{})
	require.NoError(t, err)
	assert.Empty(t, fields)
}

func TestInstitutionFieldsLocation(t *testing.T) {
	fields, err := InstitutionFields(dto.UpdateInstitutionReq{
		Location: &dto.LocationReq{Department: "Science", Coordinates: []float64{-123.456, 45.678}},
	})
	require.NoError(t, err)

	loc, ok := fields["location"].(*models.Location)
	require.True(t, ok)
	assert.Equal(t, "Science", loc.Department)
	assert.Equal(t, []float64{-123.456, 45.678}, loc.Coordinates)
}

func TestInstitutionFieldsBadCoordinates(t *testing.T) {
	_, err := InstitutionFields(dto.UpdateInstitutionReq{
		Location: &dto.LocationReq{Coordinates: []float64{1.0}},
	})
	assert.True(t, apperr.IsValidation(err))
}

func TestClassFieldsCoercesReferences(t *testing.T) {
	teacher := bson.NewObjectID()
	s1, s2 := bson.NewObjectID(), bson.NewObjectID()
	students := []string{s1.Hex(), s2.Hex()}

	fields, err := ClassFields(dto.UpdateClassReq{
		Name:       strPtr("Physics 201"),
		TeacherID:  strPtr(teacher.Hex()),
		StudentIDs: &students,
	})
	require.NoError(t, err)

	assert.Equal(t, "Physics 201", fields["name"])
	assert.Equal(t, teacher, fields["teacher_id"])
	assert.Equal(t, []bson.ObjectID{s1, s2}, fields["student_ids"])
}

func TestClassFieldsNameOnly(t *testing.T) {
	fields, err := ClassFields(dto.UpdateClassReq{Name: strPtr("Math 102")})
	require.NoError(t, err)

	assert.Equal(t, bson.M{"name": "Math 102"}, fields)
	assert.NotContains(t, fields, "teacher_id")
	assert.NotContains(t, fields, "student_ids")
}

func TestClassFieldsBadTeacherID(t *testing.T) {
	_, err := ClassFields(dto.UpdateClassReq{TeacherID: strPtr("bogus")})
	assert.True(t, apperr.IsInvalidID(err))
}

func TestResourceFields(t *testing.T) {
	fields, err := ResourceFields(dto.UpdateResourceReq{
		Title: strPtr("Lecture 1"),
		Type:  strPtr("video"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Lecture 1", fields["title"])
	assert.Equal(t, models.ResourceVideo, fields["type"])
}

func TestResourceFieldsBadType(t *testing.T) {
	_, err := ResourceFields(dto.UpdateResourceReq{Type: strPtr("podcast")})
	assert.True(t, apperr.IsValidation(err))
}

func TestCommentFields(t *testing.T) {
	author := bson.NewObjectID()

	fields, err := CommentFields(dto.UpdateCommentReq{
		UserID:  strPtr(author.Hex()),
		Content: strPtr("updated"),
	})
	require.NoError(t, err)

	assert.Equal(t, author, fields["user_id"])
	assert.Equal(t, "updated", fields["content"])
}

func TestUserFields(t *testing.T) {
	instID := bson.NewObjectID()

	fields, err := UserFields(dto.UpdateUserReq{
		Name:          &dto.NameReq{FirstName: "Jane", LastName: "Smith"},
		Email:         strPtr("janesmith@example.com"),
		Role:          strPtr("teacher"),
		InstitutionID: strPtr(instID.Hex()),
	})
	require.NoError(t, err)

	assert.Equal(t, models.Name{FirstName: "Jane", LastName: "Smith"}, fields["name"])
	assert.Equal(t, "janesmith@example.com", fields["email"])
	assert.Equal(t, models.RoleTeacher, fields["role"])
	assert.Equal(t, instID, fields["educational_institution_id"])
	assert.NotContains(t, fields, "password")
	assert.NotContains(t, fields, "birth_date")
}

func TestUserFieldsBadRole(t *testing.T) {
	_, err := UserFields(dto.UpdateUserReq{Role: strPtr("janitor")})
	assert.True(t, apperr.IsValidation(err))
}

// The filtered positional updates assume every embedded sequence exists as an
// array on its parent. These checks pin the stored shape of freshly created
// entities: empty arrays, never a missing field.

func requireArrayKeys(t *testing.T, doc interface{}, keys ...string) {
	t.Helper()
	raw, err := bson.Marshal(doc)
	require.NoError(t, err)
	for _, key := range keys {
		v, err := bson.Raw(raw).LookupErr(key)
		require.NoError(t, err, "key %q", key)
		assert.Equal(t, bson.TypeArray, v.Type, "key %q", key)
	}
}

func TestEnsureInstitutionArrays(t *testing.T) {
	inst := models.Institution{Name: "ABC University", Address: "123 University Ave"}
	ensureInstitutionArrays(&inst)
	requireArrayKeys(t, inst, "classes")
}

func TestEnsureClassArrays(t *testing.T) {
	cls := models.Class{Name: "Math 101", TeacherID: bson.NewObjectID()}
	ensureClassArrays(&cls)
	requireArrayKeys(t, cls, "student_ids", "resources")
}

func TestEnsureResourceArrays(t *testing.T) {
	res := models.Resource{Title: "Syllabus", Type: models.ResourceDocument}
	ensureResourceArrays(&res)
	requireArrayKeys(t, res, "file_ids", "comments")
}

func TestEnsureArraysKeepsExisting(t *testing.T) {
	res := models.Resource{
		Comments: []models.Comment{{ID: bson.NewObjectID(), Content: "looks good"}},
	}
	ensureResourceArrays(&res)
	assert.Len(t, res.Comments, 1)
	assert.NotNil(t, res.FileIDs)
}
