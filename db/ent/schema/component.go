package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/pipetrak/pipetrak/constants"
	"github.com/pipetrak/pipetrak/db/ent/schema/utils"
)

type Component struct{ ent.Schema }

func (Component) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "components"},
	}
}

func (Component) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs so we can define the composite unique index and read
		// resolved references back without edge loading
		field.UUID("project_id", uuid.UUID{}),
		field.UUID("drawing_id", uuid.UUID{}).Optional().Nillable(),
		field.UUID("area_id", uuid.UUID{}).Optional().Nillable(),
		field.UUID("system_id", uuid.UUID{}).Optional().Nillable(),
		field.UUID("test_package_id", uuid.UUID{}).Optional().Nillable(),
		field.String("type").NotEmpty().
			Validate(utils.EnumValidator(constants.SupportedTypes()...)),
		// canonical string form of the per-type identity key
		field.String("identity_key").NotEmpty(),
		field.String("commodity_code").Optional(),
		field.String("spec").Optional(),
		field.String("description").Optional(),
		field.String("size").Optional(),
		field.Int("quantity").Default(1).Positive(),
		field.Int("seq").Default(1).NonNegative(),
		field.String("comments").Optional().Nillable(),
		// passthrough of source columns that mapped to no expected field
		field.JSON("attributes", map[string]string{}).Optional(),
		field.JSON("current_milestones", json.RawMessage{}).Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Component) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("components").
			Field("project_id").
			Required().
			Unique(),
		edge.From("drawing", Drawing.Type).
			Ref("components").
			Field("drawing_id").
			Unique(),
		edge.From("area", Area.Type).
			Ref("components").
			Field("area_id").
			Unique(),
		edge.From("system", System.Type).
			Ref("components").
			Field("system_id").
			Unique(),
		edge.From("test_package", TestPackage.Type).
			Ref("components").
			Field("test_package_id").
			Unique(),
	}
}

func (Component) Indexes() []ent.Index {
	return []ent.Index{
		// the natural uniqueness constraint the idempotency guard relies on
		index.Fields("project_id", "type", "identity_key").Unique(),
		index.Fields("project_id", "type"),
	}
}
