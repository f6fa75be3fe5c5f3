package store

import (
	"context"
	"fmt"

	"github.com/priyam/studytrail/ent"
	"github.com/priyam/studytrail/ent/certificate"
)

// certificateRepo implements CertificateRepo using the ent client.
type certificateRepo struct {
	client *ent.Client
}

func (r *certificateRepo) MarkIssued(ctx context.Context, courseID string) error {
	issued, err := r.Issued(ctx, courseID)
	if err != nil {
		return err
	}
	if issued {
		return nil
	}

	_, err = r.client.Certificate.Create().
		SetCourseID(courseID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save certificate: %w", err)
	}
	return nil
}

func (r *certificateRepo) Issued(ctx context.Context, courseID string) (bool, error) {
	n, err := r.client.Certificate.Query().
		Where(certificate.CourseID(courseID)).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("query certificate: %w", err)
	}
	return n > 0, nil
}
