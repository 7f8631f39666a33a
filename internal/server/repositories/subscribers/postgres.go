package subscribers

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/landing/internal/dbx"
	"github.com/dmitrijs2005/landing/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Upsert(ctx context.Context, s *models.Subscriber) error {

	query :=
		`INSERT INTO subscribers (email, first_name, last_name, mobile, opt_email, opt_sms)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (email) DO UPDATE SET
		   first_name = excluded.first_name,
		   last_name = excluded.last_name,
		   mobile = excluded.mobile,
		   opt_email = excluded.opt_email,
		   opt_sms = excluded.opt_sms
		 `

	_, err := r.db.ExecContext(ctx, query,
		s.Email, s.FirstName, s.LastName, s.Mobile, s.OptEmail, s.OptSMS)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
