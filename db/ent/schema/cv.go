package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// CV is one confirmed structured candidate record. Identity fields are
// flattened into columns; experience/education/skill lists are stored as
// JSON documents since the review UI always reads them whole.
type CV struct{ ent.Schema }

func (CV) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "cvs"},
	}
}

func (CV) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("profile_id", uuid.UUID{}),
		field.String("first_name").Optional().Nillable(),
		field.String("last_name").Optional().Nillable(),
		field.String("email").Optional().Nillable(),
		field.String("phone").Optional().Nillable(),
		field.String("location").Optional().Nillable(),
		field.String("headline").Optional().Nillable(),
		field.JSON("experiences", json.RawMessage{}).Optional(),
		field.JSON("educations", json.RawMessage{}).Optional(),
		field.JSON("skills", json.RawMessage{}).Optional(),
		field.String("raw_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (CV) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY cvs -> ONE profile (FK: cvs.profile_id)
		edge.From("profile", Profile.Type).
			Ref("cvs").
			Field("profile_id").
			Required().
			Unique(),
		// ONE cv -> MANY jobs
		edge.To("jobs", ExtractJob.Type),
	}
}
