package repository

import (
	"context"
	"database/sql"
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// PersonRepo handles persons and their emergency contacts.
type PersonRepo struct {
	db *sql.DB
}

func NewPersonRepo(db *sql.DB) *PersonRepo { return &PersonRepo{db: db} }

func (r *PersonRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM persons`).Scan(&n)
	return n, err
}

// List returns persons in display order with their emergency contacts.
func (r *PersonRepo) List(ctx context.Context) ([]Person, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, name, phone, email, address, created_at, updated_at
	FROM persons ORDER BY position, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Person
	index := map[string]int{}
	for rows.Next() {
		var p Person
		if err := rows.Scan(&p.ID, &p.Name, &p.Phone, &p.Email, &p.Address, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		index[p.ID] = len(out)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	ecRows, err := r.db.QueryContext(ctx, `
	SELECT id, person_id, name, phone, relationship, position
	FROM emergency_contacts ORDER BY person_id, position`)
	if err != nil {
		return nil, err
	}
	defer ecRows.Close()
	for ecRows.Next() {
		var ec EmergencyContact
		if err := ecRows.Scan(&ec.ID, &ec.PersonID, &ec.Name, &ec.Phone, &ec.Relationship, &ec.Position); err != nil {
			return nil, err
		}
		if i, ok := index[ec.PersonID]; ok {
			out[i].EmergencyContacts = append(out[i].EmergencyContacts, ec)
		}
	}
	return out, ecRows.Err()
}

// ReplaceAll swaps the whole address book for persons in one transaction.
func (r *PersonRepo) ReplaceAll(ctx context.Context, persons []Person) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM persons`); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear persons: %w", err)
	}
	for i, p := range persons {
		if _, err := insertPerson(ctx, tx, p, i); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert person %q: %w", p.Name, err)
		}
	}
	return tx.Commit()
}

func insertPerson(ctx context.Context, tx *sql.Tx, p Person, pos int) (Person, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	_, err := tx.ExecContext(ctx, `
	INSERT INTO persons(id, name, phone, email, address, position, created_at, updated_at)
	VALUES(?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`,
		p.ID, p.Name, p.Phone, p.Email, p.Address, pos)
	if err != nil {
		return Person{}, err
	}
	p.EmergencyContacts = slices.Clone(p.EmergencyContacts)
	for i := range p.EmergencyContacts {
		ec := &p.EmergencyContacts[i]
		if ec.ID == "" {
			ec.ID = uuid.NewString()
		}
		ec.PersonID = p.ID
		ec.Position = i
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO emergency_contacts(id, person_id, name, phone, relationship, position)
		VALUES(?, ?, ?, ?, ?, ?)`,
			ec.ID, ec.PersonID, ec.Name, ec.Phone, ec.Relationship, ec.Position); err != nil {
			return Person{}, err
		}
	}
	return p, nil
}
