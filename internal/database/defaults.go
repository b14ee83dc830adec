package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/jask/addressbook/internal/database/repository"
)

// SeedDefaults fills an empty address book with sample persons.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	repo := repository.NewPersonRepo(db)
	n, err := repo.Count(ctx)
	if err != nil || n > 0 {
		return err
	}
	return repo.ReplaceAll(ctx, SamplePersons())
}

// SamplePersons returns the sample address book with stable IDs.
func SamplePersons() []repository.Person {
	type ec struct{ name, phone, rel string }
	samples := []struct {
		name, phone, email, address string
		contacts                    []ec
	}{
		{"Alex Yeoh", "87438807", "alexyeoh@example.com", "Blk 30 Geylang Street 29, #06-40",
			[]ec{{"Bernice Yeoh", "99272758", "Sister"}}},
		{"Bernice Yu", "99272758", "berniceyu@example.com", "Blk 30 Lorong 3 Serangoon Gardens, #07-18",
			[]ec{{"Charlotte Oliveiro", "93210283", "Friend"}, {"Tom Yu", "91031282", "Father"}}},
		{"Charlotte Oliveiro", "93210283", "charlotte@example.com", "Blk 11 Ang Mo Kio Street 74, #11-04",
			[]ec{{"David Li", "91031282", "Colleague"}}},
		{"David Li", "91031282", "lidavid@example.com", "Blk 436 Serangoon Gardens Street 26, #16-43",
			nil},
		{"Irfan Ibrahim", "92492021", "irfan@example.com", "Blk 47 Tampines Street 20, #17-35",
			[]ec{{"Roy Balakrishnan", "92624417", "Brother"}, {"Siti Ibrahim", "92624418", "Mother"}}},
	}
	out := make([]repository.Person, 0, len(samples))
	for _, s := range samples {
		id := uuid.NewSHA1(uuid.NameSpaceOID, []byte("person:"+s.name)).String()
		p := repository.Person{ID: id, Name: s.name, Phone: s.phone, Email: s.email, Address: s.address}
		for _, c := range s.contacts {
			p.EmergencyContacts = append(p.EmergencyContacts, repository.EmergencyContact{
				ID:           uuid.NewSHA1(uuid.NameSpaceOID, []byte("ec:"+s.name+":"+c.name)).String(),
				Name:         c.name,
				Phone:        c.phone,
				Relationship: c.rel,
			})
		}
		out = append(out, p)
	}
	return out
}
