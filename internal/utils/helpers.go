package utils

import (
	"encoding/json"
	"time"

	"github.com/scanfolio/cv-scanner/gen/ent"
	cvspb "github.com/scanfolio/cv-scanner/gen/proto/cvs/v1"
	"github.com/scanfolio/cv-scanner/internal/entity"
	"github.com/scanfolio/cv-scanner/internal/extract"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func unmarshalList[T any](raw json.RawMessage) []T {
	out := []T{}
	if len(raw) == 0 {
		return out
	}
	// ignore decode errors: a corrupt column yields an empty list rather
	// than failing the whole read
	_ = json.Unmarshal(raw, &out)
	return out
}

func ToProfile(e *ent.Profile) *entity.Profile {
	return &entity.Profile{
		ID:              e.ID,
		Name:            e.Name,
		Email:           e.Email,
		DefaultLanguage: e.DefaultLanguage,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func ToCV(e *ent.CV) *entity.CV {
	return &entity.CV{
		ID:          e.ID,
		ProfileID:   e.ProfileID,
		FirstName:   strOrEmpty(e.FirstName),
		LastName:    strOrEmpty(e.LastName),
		Email:       strOrEmpty(e.Email),
		Phone:       strOrEmpty(e.Phone),
		Location:    strOrEmpty(e.Location),
		Headline:    strOrEmpty(e.Headline),
		Experiences: unmarshalList[extract.Experience](e.Experiences),
		Educations:  unmarshalList[extract.Education](e.Educations),
		Skills:      unmarshalList[extract.Skill](e.Skills),
		RawText:     strOrEmpty(e.RawText),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToPBProfile(p *ent.Profile) *cvspb.Profile {
	return &cvspb.Profile{
		Id:              p.ID.String(),
		Name:            p.Name,
		Email:           strOrEmpty(p.Email),
		DefaultLanguage: p.DefaultLanguage,
		CreatedAt:       p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBCV(c *entity.CV) *cvspb.CV {
	out := &cvspb.CV{
		Id:          c.ID.String(),
		ProfileId:   c.ProfileID.String(),
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		Phone:       c.Phone,
		Location:    c.Location,
		Headline:    c.Headline,
		Experiences: make([]*cvspb.Experience, 0, len(c.Experiences)),
		Educations:  make([]*cvspb.Education, 0, len(c.Educations)),
		Skills:      make([]*cvspb.Skill, 0, len(c.Skills)),
		CreatedAt:   c.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   c.UpdatedAt.UTC().Format(time.RFC3339),
	}
	for _, e := range c.Experiences {
		out.Experiences = append(out.Experiences, &cvspb.Experience{
			Position:    e.Position,
			Company:     e.Company,
			Location:    e.Location,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			Description: e.Description,
		})
	}
	for _, e := range c.Educations {
		out.Educations = append(out.Educations, &cvspb.Education{
			Degree:      e.Degree,
			School:      e.School,
			Location:    e.Location,
			StartYear:   e.StartYear,
			EndYear:     e.EndYear,
			Description: e.Description,
		})
	}
	for _, s := range c.Skills {
		out.Skills = append(out.Skills, &cvspb.Skill{
			Name:     s.Name,
			Category: string(s.Category),
			Level:    string(s.Level),
		})
	}
	return out
}

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
