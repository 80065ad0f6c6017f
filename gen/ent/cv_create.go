// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/scanfolio/cv-scanner/gen/ent/cv"
	"github.com/scanfolio/cv-scanner/gen/ent/extractjob"
	"github.com/scanfolio/cv-scanner/gen/ent/profile"
)

// CVCreate is the builder for creating a CV entity.
type CVCreate struct {
	config
	mutation *CVMutation
	hooks    []Hook
}

// SetProfileID sets the "profile_id" field.
func (_c *CVCreate) SetProfileID(v uuid.UUID) *CVCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetFirstName sets the "first_name" field.
func (_c *CVCreate) SetFirstName(v string) *CVCreate {
	_c.mutation.SetFirstName(v)
	return _c
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_c *CVCreate) SetNillableFirstName(v *string) *CVCreate {
	if v != nil {
		_c.SetFirstName(*v)
	}
	return _c
}

// SetLastName sets the "last_name" field.
func (_c *CVCreate) SetLastName(v string) *CVCreate {
	_c.mutation.SetLastName(v)
	return _c
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_c *CVCreate) SetNillableLastName(v *string) *CVCreate {
	if v != nil {
		_c.SetLastName(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *CVCreate) SetEmail(v string) *CVCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *CVCreate) SetNillableEmail(v *string) *CVCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *CVCreate) SetPhone(v string) *CVCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *CVCreate) SetNillablePhone(v *string) *CVCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetLocation sets the "location" field.
func (_c *CVCreate) SetLocation(v string) *CVCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_c *CVCreate) SetNillableLocation(v *string) *CVCreate {
	if v != nil {
		_c.SetLocation(*v)
	}
	return _c
}

// SetHeadline sets the "headline" field.
func (_c *CVCreate) SetHeadline(v string) *CVCreate {
	_c.mutation.SetHeadline(v)
	return _c
}

// SetNillableHeadline sets the "headline" field if the given value is not nil.
func (_c *CVCreate) SetNillableHeadline(v *string) *CVCreate {
	if v != nil {
		_c.SetHeadline(*v)
	}
	return _c
}

// SetExperiences sets the "experiences" field.
func (_c *CVCreate) SetExperiences(v json.RawMessage) *CVCreate {
	_c.mutation.SetExperiences(v)
	return _c
}

// SetEducations sets the "educations" field.
func (_c *CVCreate) SetEducations(v json.RawMessage) *CVCreate {
	_c.mutation.SetEducations(v)
	return _c
}

// SetSkills sets the "skills" field.
func (_c *CVCreate) SetSkills(v json.RawMessage) *CVCreate {
	_c.mutation.SetSkills(v)
	return _c
}

// SetRawText sets the "raw_text" field.
func (_c *CVCreate) SetRawText(v string) *CVCreate {
	_c.mutation.SetRawText(v)
	return _c
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_c *CVCreate) SetNillableRawText(v *string) *CVCreate {
	if v != nil {
		_c.SetRawText(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CVCreate) SetCreatedAt(v time.Time) *CVCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CVCreate) SetNillableCreatedAt(v *time.Time) *CVCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CVCreate) SetUpdatedAt(v time.Time) *CVCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CVCreate) SetNillableUpdatedAt(v *time.Time) *CVCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CVCreate) SetID(v uuid.UUID) *CVCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CVCreate) SetNillableID(v *uuid.UUID) *CVCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_c *CVCreate) SetProfile(v *Profile) *CVCreate {
	return _c.SetProfileID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_c *CVCreate) AddJobIDs(ids ...uuid.UUID) *CVCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_c *CVCreate) AddJobs(v ...*ExtractJob) *CVCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the CVMutation object of the builder.
func (_c *CVCreate) Mutation() *CVMutation {
	return _c.mutation
}

// Save creates the CV in the database.
func (_c *CVCreate) Save(ctx context.Context) (*CV, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CVCreate) SaveX(ctx context.Context) *CV {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CVCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CVCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CVCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := cv.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := cv.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := cv.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CVCreate) check() error {
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "CV.profile_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CV.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CV.updated_at"`)}
	}
	if len(_c.mutation.ProfileIDs()) == 0 {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required edge "CV.profile"`)}
	}
	return nil
}

func (_c *CVCreate) sqlSave(ctx context.Context) (*CV, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CVCreate) createSpec() (*CV, *sqlgraph.CreateSpec) {
	var (
		_node = &CV{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cv.Table, sqlgraph.NewFieldSpec(cv.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FirstName(); ok {
		_spec.SetField(cv.FieldFirstName, field.TypeString, value)
		_node.FirstName = &value
	}
	if value, ok := _c.mutation.LastName(); ok {
		_spec.SetField(cv.FieldLastName, field.TypeString, value)
		_node.LastName = &value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(cv.FieldEmail, field.TypeString, value)
		_node.Email = &value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(cv.FieldPhone, field.TypeString, value)
		_node.Phone = &value
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(cv.FieldLocation, field.TypeString, value)
		_node.Location = &value
	}
	if value, ok := _c.mutation.Headline(); ok {
		_spec.SetField(cv.FieldHeadline, field.TypeString, value)
		_node.Headline = &value
	}
	if value, ok := _c.mutation.Experiences(); ok {
		_spec.SetField(cv.FieldExperiences, field.TypeJSON, value)
		_node.Experiences = value
	}
	if value, ok := _c.mutation.Educations(); ok {
		_spec.SetField(cv.FieldEducations, field.TypeJSON, value)
		_node.Educations = value
	}
	if value, ok := _c.mutation.Skills(); ok {
		_spec.SetField(cv.FieldSkills, field.TypeJSON, value)
		_node.Skills = value
	}
	if value, ok := _c.mutation.RawText(); ok {
		_spec.SetField(cv.FieldRawText, field.TypeString, value)
		_node.RawText = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(cv.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(cv.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   cv.ProfileTable,
			Columns: []string{cv.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProfileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cv.JobsTable,
			Columns: []string{cv.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CVCreateBulk is the builder for creating many CV entities in bulk.
type CVCreateBulk struct {
	config
	err      error
	builders []*CVCreate
}

// Save creates the CV entities in the database.
func (_c *CVCreateBulk) Save(ctx context.Context) ([]*CV, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CV, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CVMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CVCreateBulk) SaveX(ctx context.Context) []*CV {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CVCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CVCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
