package vaultdb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vaultage/internal/passwords"
	"github.com/MKhiriev/go-vaultage/models"
)

var fixedNow = time.Date(2026, time.March, 3, 10, 4, 5, 0, time.UTC)

func newTestDB() *DB {
	return New(passwords.NewClassifier(), WithClock(func() time.Time { return fixedNow }))
}

func ptr[T any](v T) *T { return &v }

func seed(t *testing.T, db *DB) (github, gitlab, bank string) {
	t.Helper()

	github = db.Add(models.EntryAttrs{Title: "github", Login: "json", Password: "zephyr", URL: EncodeLocator("http://github.com", "")})
	gitlab = db.Add(models.EntryAttrs{Title: "gitlab", Login: "jasongit", Password: "jackson", URL: EncodeLocator("http://lab.git.com", "")})
	bank = db.Add(models.EntryAttrs{Title: "my bank", Login: "superher0", Password: "ldfksdjfolfj08028&(*&*", URL: EncodeLocator("https://mybank.com", "credit card pin:\n1234")})
	return github, gitlab, bank
}

func TestDB_AddAssignsSequentialIDs(t *testing.T) {
	db := newTestDB()
	github, gitlab, bank := seed(t, db)

	assert.Equal(t, []string{"0", "1", "2"}, []string{github, gitlab, bank})
	assert.Equal(t, 3, db.Size())

	e, err := db.Get(bank)
	require.NoError(t, err)
	assert.Equal(t, "my bank", e.Title)
	assert.Equal(t, "Tue, 03 Mar 2026 10:04:05 GMT", e.Created)
	assert.Equal(t, e.Created, e.Updated)
	assert.Equal(t, models.PasswordStrengthStrong, e.Strength)
	assert.Zero(t, e.UsageCount)
}

func TestDB_IDsAreNotReusedAfterRemove(t *testing.T) {
	db := newTestDB()
	_, _, bank := seed(t, db)

	require.NoError(t, db.Remove(bank))
	require.NoError(t, db.Remove("0"))

	id := db.Add(models.EntryAttrs{Title: "new"})
	assert.Equal(t, "3", id, "size-derived ids would collide here")
	assert.Equal(t, 2, db.Size())
}

func TestDB_UpdateAppliesOnlySetFields(t *testing.T) {
	db := newTestDB()
	github, _, _ := seed(t, db)

	later := fixedNow.Add(time.Hour)
	db.now = func() time.Time { return later }

	e, err := db.Update(github, models.EntryPatch{Password: ptr("N1N$a23489zasd√él123")})
	require.NoError(t, err)

	assert.Equal(t, "github", e.Title)
	assert.Equal(t, "json", e.Login)
	assert.Equal(t, "N1N$a23489zasd√él123", e.Password)
	assert.Equal(t, models.PasswordStrengthStrong, e.Strength)
	assert.Equal(t, "Tue, 03 Mar 2026 11:04:05 GMT", e.Updated)
	assert.NotEqual(t, e.Created, e.Updated)

	e, err = db.Update(github, models.EntryPatch{Hidden: ptr(true), Title: ptr("GitHub")})
	require.NoError(t, err)
	assert.True(t, e.Hidden)
	assert.Equal(t, "GitHub", e.Title)
	assert.Equal(t, models.PasswordStrengthStrong, e.Strength)
}

func TestDB_MissingEntry(t *testing.T) {
	db := newTestDB()

	_, err := db.Get("42")
	assert.ErrorIs(t, err, ErrEntryNotFound)

	_, err = db.Update("42", models.EntryPatch{})
	assert.ErrorIs(t, err, ErrEntryNotFound)

	assert.ErrorIs(t, db.Remove("42"), ErrEntryNotFound)

	_, err = db.EntryUsed("42")
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestDB_EntryUsed(t *testing.T) {
	db := newTestDB()
	github, _, _ := seed(t, db)

	n, err := db.EntryUsed(github)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = db.EntryUsed(github)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	e, _ := db.Get(github)
	assert.Equal(t, 2, e.UsageCount)
}

func TestDB_Find(t *testing.T) {
	db := newTestDB()
	seed(t, db)

	t.Run("no terms returns everything by id", func(t *testing.T) {
		all := db.Find()
		require.Len(t, all, 3)
		assert.Equal(t, "my bank", all[2].Title)

		assert.Len(t, db.Find(""), 3)
	})

	t.Run("more field hits rank first", func(t *testing.T) {
		found := db.Find("git")
		require.Len(t, found, 2)
		assert.Equal(t, "gitlab", found[0].Title)
		assert.Equal(t, "github", found[1].Title)
	})

	t.Run("case insensitive", func(t *testing.T) {
		found := db.Find("GITLAB")
		require.Len(t, found, 1)
		assert.Equal(t, "gitlab", found[0].Title)
	})

	t.Run("every term must match", func(t *testing.T) {
		found := db.Find("git", "lab")
		require.Len(t, found, 1)
		assert.Equal(t, "gitlab", found[0].Title)

		assert.Empty(t, db.Find("git", "bank"))
	})

	t.Run("secure note is searchable", func(t *testing.T) {
		found := db.Find("pin")
		require.Len(t, found, 1)
		assert.Equal(t, "my bank", found[0].Title)
	})

	t.Run("passwords are not searchable", func(t *testing.T) {
		assert.Empty(t, db.Find("zephyr"))
	})

	t.Run("usage breaks ties", func(t *testing.T) {
		_, err := db.EntryUsed("0")
		require.NoError(t, err)

		found := db.Find("http")
		require.Len(t, found, 3)
		assert.Equal(t, "github", found[0].Title)
	})
}

func TestDB_WeakPasswords(t *testing.T) {
	db := newTestDB()
	github, _, _ := seed(t, db)

	weak := db.WeakPasswords(models.PasswordStrengthWeak)
	require.Len(t, weak, 2)
	assert.Equal(t, "github", weak[0].Title)
	assert.Equal(t, "gitlab", weak[1].Title)

	_, err := db.Update(github, models.EntryPatch{Password: ptr("N1N$a23489zasd√él123")})
	require.NoError(t, err)

	weak = db.WeakPasswords(models.PasswordStrengthWeak)
	require.Len(t, weak, 1)
	assert.Equal(t, "gitlab", weak[0].Title)

	assert.Len(t, db.WeakPasswords(models.PasswordStrengthStrong), 3)
}

func TestDB_ReuseCounts(t *testing.T) {
	db := newTestDB()
	a := db.Add(models.EntryAttrs{Title: "a", Password: "hunter2"})
	b := db.Add(models.EntryAttrs{Title: "b", Password: "hunter2"})
	c := db.Add(models.EntryAttrs{Title: "c", Password: "hunter2"})
	db.Add(models.EntryAttrs{Title: "d", Password: "unique"})
	db.Add(models.EntryAttrs{Title: "e"})
	db.Add(models.EntryAttrs{Title: "f"})

	reused := db.EntriesWhichReusePasswords()
	require.Len(t, reused, 3)
	for _, e := range reused {
		assert.Equal(t, 2, e.ReuseCount, e.Title)
	}

	require.NoError(t, db.Remove(c))
	_, err := db.Update(b, models.EntryPatch{Password: ptr("something else")})
	require.NoError(t, err)

	assert.Empty(t, db.EntriesWhichReusePasswords())

	e, _ := db.Get(a)
	assert.Zero(t, e.ReuseCount)
}

func TestDB_RevisionIsMonotonic(t *testing.T) {
	db := newTestDB()
	assert.Equal(t, 0, db.Revision())

	before, err := db.Serialize()
	require.NoError(t, err)

	assert.Equal(t, 1, db.NewRevision())
	assert.Equal(t, 2, db.NewRevision())

	after, err := db.Serialize()
	require.NoError(t, err)
	assert.NotEqual(t, before, after, "revision is part of the plaintext")

	require.NoError(t, db.ReplaceAll(nil))
	assert.Equal(t, 3, db.Revision())
}

func TestDB_ReplaceAll(t *testing.T) {
	db := newTestDB()
	seed(t, db)

	err := db.ReplaceAll([]models.Entry{
		{ID: "7", Title: "imported", Password: "same"},
		{ID: "legacy-id", Title: "other", Password: "same"},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, db.Size())
	_, err = db.Get("0")
	assert.ErrorIs(t, err, ErrEntryNotFound)

	e, err := db.Get("legacy-id")
	require.NoError(t, err)
	assert.Equal(t, 1, e.ReuseCount)

	assert.Equal(t, "8", db.Add(models.EntryAttrs{Title: "next"}))
}

func TestDB_ReplaceAllRejectsBadIDs(t *testing.T) {
	db := newTestDB()
	seed(t, db)

	err := db.ReplaceAll([]models.Entry{{ID: "1"}, {ID: "1"}})
	assert.ErrorIs(t, err, ErrDuplicateEntryID)

	err = db.ReplaceAll([]models.Entry{{Title: "no id"}})
	assert.ErrorIs(t, err, ErrEmptyEntryID)

	// store untouched
	assert.Equal(t, 3, db.Size())
	assert.Equal(t, 0, db.Revision())
}

func TestDB_SerializeCanonicalForm(t *testing.T) {
	db := newTestDB()
	db.Add(models.EntryAttrs{Title: "Hello", Login: "Bob", Password: "zephyr", URL: "http://example.com?a=1&b=2"})
	db.NewRevision()

	got, err := db.Serialize()
	require.NoError(t, err)

	want := `{"entries":{"0":{"id":"0","title":"Hello","url":"http://example.com?a=1&b=2","login":"Bob","password":"zephyr",` +
		`"created":"Tue, 03 Mar 2026 10:04:05 GMT","updated":"Tue, 03 Mar 2026 10:04:05 GMT","usage_count":0,"reuse_count":0,` +
		`"password_strength_indication":1,"hidden":false}},"revision":1,"version":1}`
	assert.Equal(t, want, got)
}

func TestDeserialize_RoundTrip(t *testing.T) {
	db := newTestDB()
	seed(t, db)
	db.Add(models.EntryAttrs{Title: "ten", Password: "x"})
	db.NewRevision()

	plain, err := db.Serialize()
	require.NoError(t, err)

	back, err := Deserialize(plain, passwords.NewClassifier())
	require.NoError(t, err)

	again, err := back.Serialize()
	require.NoError(t, err)
	assert.Equal(t, plain, again)

	assert.Equal(t, db.Revision(), back.Revision())
	assert.Equal(t, db.All(), back.All())
	assert.Equal(t, "4", back.Add(models.EntryAttrs{Title: "after"}))
}

// Счётчики повторов в документе могли записать другим клиентом или вручную;
// после загрузки они должны соответствовать паролям.
func TestDeserialize_RecomputesReuseCounts(t *testing.T) {
	plain := `{"entries":{` +
		`"0":{"id":"0","title":"a","password":"same","reuse_count":0},` +
		`"1":{"id":"1","title":"b","password":"same","reuse_count":0},` +
		`"2":{"id":"2","title":"c","password":"unique","reuse_count":3}` +
		`},"revision":4,"version":1}`

	db, err := Deserialize(plain, nil)
	require.NoError(t, err)

	reused := db.EntriesWhichReusePasswords()
	require.Len(t, reused, 2)
	for _, e := range reused {
		assert.Equal(t, "same", e.Password)
		assert.Equal(t, 1, e.ReuseCount)
	}

	unique, err := db.Get("2")
	require.NoError(t, err)
	assert.Zero(t, unique.ReuseCount)
}

func TestDeserialize_Errors(t *testing.T) {
	tests := []struct {
		name  string
		plain string
		want  error
	}{
		{"not json", "garbage", ErrInvalidDatabase},
		{"wrong shape", `{"entries":[]}`, ErrInvalidDatabase},
		{"id mismatch", `{"entries":{"1":{"id":"2"}},"revision":0,"version":1}`, ErrInvalidDatabase},
		{"future version", `{"entries":{},"revision":0,"version":2}`, ErrUnsupportedVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Deserialize(tt.plain, nil)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDeserialize_EmptyAndLegacyDocuments(t *testing.T) {
	db, err := Deserialize(`{}`, nil)
	require.NoError(t, err)
	assert.Zero(t, db.Size())

	db, err = Deserialize(`{"entries":{"5":{"title":"no id field"}},"revision":9}`, nil)
	require.NoError(t, err)

	e, err := db.Get("5")
	require.NoError(t, err)
	assert.Equal(t, "5", e.ID)
	assert.Equal(t, 9, db.Revision())
	assert.Equal(t, "6", db.Add(models.EntryAttrs{}))
}
