// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/scanfolio/cv-scanner/gen/ent/cv"
	"github.com/scanfolio/cv-scanner/gen/ent/extractjob"
	"github.com/scanfolio/cv-scanner/gen/ent/predicate"
	"github.com/scanfolio/cv-scanner/gen/ent/profile"
)

// CVUpdate is the builder for updating CV entities.
type CVUpdate struct {
	config
	hooks    []Hook
	mutation *CVMutation
}

// Where appends a list predicates to the CVUpdate builder.
func (_u *CVUpdate) Where(ps ...predicate.CV) *CVUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *CVUpdate) SetProfileID(v uuid.UUID) *CVUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *CVUpdate) SetNillableProfileID(v *uuid.UUID) *CVUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *CVUpdate) SetFirstName(v string) *CVUpdate {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *CVUpdate) SetNillableFirstName(v *string) *CVUpdate {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// ClearFirstName clears the value of the "first_name" field.
func (_u *CVUpdate) ClearFirstName() *CVUpdate {
	_u.mutation.ClearFirstName()
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *CVUpdate) SetLastName(v string) *CVUpdate {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *CVUpdate) SetNillableLastName(v *string) *CVUpdate {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// ClearLastName clears the value of the "last_name" field.
func (_u *CVUpdate) ClearLastName() *CVUpdate {
	_u.mutation.ClearLastName()
	return _u
}

// SetEmail sets the "email" field.
func (_u *CVUpdate) SetEmail(v string) *CVUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *CVUpdate) SetNillableEmail(v *string) *CVUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *CVUpdate) ClearEmail() *CVUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *CVUpdate) SetPhone(v string) *CVUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *CVUpdate) SetNillablePhone(v *string) *CVUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *CVUpdate) ClearPhone() *CVUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetLocation sets the "location" field.
func (_u *CVUpdate) SetLocation(v string) *CVUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *CVUpdate) SetNillableLocation(v *string) *CVUpdate {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *CVUpdate) ClearLocation() *CVUpdate {
	_u.mutation.ClearLocation()
	return _u
}

// SetHeadline sets the "headline" field.
func (_u *CVUpdate) SetHeadline(v string) *CVUpdate {
	_u.mutation.SetHeadline(v)
	return _u
}

// SetNillableHeadline sets the "headline" field if the given value is not nil.
func (_u *CVUpdate) SetNillableHeadline(v *string) *CVUpdate {
	if v != nil {
		_u.SetHeadline(*v)
	}
	return _u
}

// ClearHeadline clears the value of the "headline" field.
func (_u *CVUpdate) ClearHeadline() *CVUpdate {
	_u.mutation.ClearHeadline()
	return _u
}

// SetExperiences sets the "experiences" field.
func (_u *CVUpdate) SetExperiences(v json.RawMessage) *CVUpdate {
	_u.mutation.SetExperiences(v)
	return _u
}

// AppendExperiences appends value to the "experiences" field.
func (_u *CVUpdate) AppendExperiences(v json.RawMessage) *CVUpdate {
	_u.mutation.AppendExperiences(v)
	return _u
}

// ClearExperiences clears the value of the "experiences" field.
func (_u *CVUpdate) ClearExperiences() *CVUpdate {
	_u.mutation.ClearExperiences()
	return _u
}

// SetEducations sets the "educations" field.
func (_u *CVUpdate) SetEducations(v json.RawMessage) *CVUpdate {
	_u.mutation.SetEducations(v)
	return _u
}

// AppendEducations appends value to the "educations" field.
func (_u *CVUpdate) AppendEducations(v json.RawMessage) *CVUpdate {
	_u.mutation.AppendEducations(v)
	return _u
}

// ClearEducations clears the value of the "educations" field.
func (_u *CVUpdate) ClearEducations() *CVUpdate {
	_u.mutation.ClearEducations()
	return _u
}

// SetSkills sets the "skills" field.
func (_u *CVUpdate) SetSkills(v json.RawMessage) *CVUpdate {
	_u.mutation.SetSkills(v)
	return _u
}

// AppendSkills appends value to the "skills" field.
func (_u *CVUpdate) AppendSkills(v json.RawMessage) *CVUpdate {
	_u.mutation.AppendSkills(v)
	return _u
}

// ClearSkills clears the value of the "skills" field.
func (_u *CVUpdate) ClearSkills() *CVUpdate {
	_u.mutation.ClearSkills()
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *CVUpdate) SetRawText(v string) *CVUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *CVUpdate) SetNillableRawText(v *string) *CVUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *CVUpdate) ClearRawText() *CVUpdate {
	_u.mutation.ClearRawText()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CVUpdate) SetCreatedAt(v time.Time) *CVUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CVUpdate) SetNillableCreatedAt(v *time.Time) *CVUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CVUpdate) SetUpdatedAt(v time.Time) *CVUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *CVUpdate) SetProfile(v *Profile) *CVUpdate {
	return _u.SetProfileID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *CVUpdate) AddJobIDs(ids ...uuid.UUID) *CVUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *CVUpdate) AddJobs(v ...*ExtractJob) *CVUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the CVMutation object of the builder.
func (_u *CVUpdate) Mutation() *CVMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *CVUpdate) ClearProfile() *CVUpdate {
	_u.mutation.ClearProfile()
	return _u
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *CVUpdate) ClearJobs() *CVUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *CVUpdate) RemoveJobIDs(ids ...uuid.UUID) *CVUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *CVUpdate) RemoveJobs(v ...*ExtractJob) *CVUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CVUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CVUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CVUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CVUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CVUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := cv.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CVUpdate) check() error {
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CV.profile"`)
	}
	return nil
}

func (_u *CVUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cv.Table, cv.Columns, sqlgraph.NewFieldSpec(cv.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(cv.FieldFirstName, field.TypeString, value)
	}
	if _u.mutation.FirstNameCleared() {
		_spec.ClearField(cv.FieldFirstName, field.TypeString)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(cv.FieldLastName, field.TypeString, value)
	}
	if _u.mutation.LastNameCleared() {
		_spec.ClearField(cv.FieldLastName, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(cv.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(cv.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(cv.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(cv.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(cv.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(cv.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.Headline(); ok {
		_spec.SetField(cv.FieldHeadline, field.TypeString, value)
	}
	if _u.mutation.HeadlineCleared() {
		_spec.ClearField(cv.FieldHeadline, field.TypeString)
	}
	if value, ok := _u.mutation.Experiences(); ok {
		_spec.SetField(cv.FieldExperiences, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExperiences(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, cv.FieldExperiences, value)
		})
	}
	if _u.mutation.ExperiencesCleared() {
		_spec.ClearField(cv.FieldExperiences, field.TypeJSON)
	}
	if value, ok := _u.mutation.Educations(); ok {
		_spec.SetField(cv.FieldEducations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEducations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, cv.FieldEducations, value)
		})
	}
	if _u.mutation.EducationsCleared() {
		_spec.ClearField(cv.FieldEducations, field.TypeJSON)
	}
	if value, ok := _u.mutation.Skills(); ok {
		_spec.SetField(cv.FieldSkills, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSkills(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, cv.FieldSkills, value)
		})
	}
	if _u.mutation.SkillsCleared() {
		_spec.ClearField(cv.FieldSkills, field.TypeJSON)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(cv.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(cv.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(cv.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(cv.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cv.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CVUpdateOne is the builder for updating a single CV entity.
type CVUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CVMutation
}

// SetProfileID sets the "profile_id" field.
func (_u *CVUpdateOne) SetProfileID(v uuid.UUID) *CVUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *CVUpdateOne) SetNillableProfileID(v *uuid.UUID) *CVUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *CVUpdateOne) SetFirstName(v string) *CVUpdateOne {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *CVUpdateOne) SetNillableFirstName(v *string) *CVUpdateOne {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// ClearFirstName clears the value of the "first_name" field.
func (_u *CVUpdateOne) ClearFirstName() *CVUpdateOne {
	_u.mutation.ClearFirstName()
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *CVUpdateOne) SetLastName(v string) *CVUpdateOne {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *CVUpdateOne) SetNillableLastName(v *string) *CVUpdateOne {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// ClearLastName clears the value of the "last_name" field.
func (_u *CVUpdateOne) ClearLastName() *CVUpdateOne {
	_u.mutation.ClearLastName()
	return _u
}

// SetEmail sets the "email" field.
func (_u *CVUpdateOne) SetEmail(v string) *CVUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *CVUpdateOne) SetNillableEmail(v *string) *CVUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *CVUpdateOne) ClearEmail() *CVUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *CVUpdateOne) SetPhone(v string) *CVUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *CVUpdateOne) SetNillablePhone(v *string) *CVUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *CVUpdateOne) ClearPhone() *CVUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetLocation sets the "location" field.
func (_u *CVUpdateOne) SetLocation(v string) *CVUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *CVUpdateOne) SetNillableLocation(v *string) *CVUpdateOne {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *CVUpdateOne) ClearLocation() *CVUpdateOne {
	_u.mutation.ClearLocation()
	return _u
}

// SetHeadline sets the "headline" field.
func (_u *CVUpdateOne) SetHeadline(v string) *CVUpdateOne {
	_u.mutation.SetHeadline(v)
	return _u
}

// SetNillableHeadline sets the "headline" field if the given value is not nil.
func (_u *CVUpdateOne) SetNillableHeadline(v *string) *CVUpdateOne {
	if v != nil {
		_u.SetHeadline(*v)
	}
	return _u
}

// ClearHeadline clears the value of the "headline" field.
func (_u *CVUpdateOne) ClearHeadline() *CVUpdateOne {
	_u.mutation.ClearHeadline()
	return _u
}

// SetExperiences sets the "experiences" field.
func (_u *CVUpdateOne) SetExperiences(v json.RawMessage) *CVUpdateOne {
	_u.mutation.SetExperiences(v)
	return _u
}

// AppendExperiences appends value to the "experiences" field.
func (_u *CVUpdateOne) AppendExperiences(v json.RawMessage) *CVUpdateOne {
	_u.mutation.AppendExperiences(v)
	return _u
}

// ClearExperiences clears the value of the "experiences" field.
func (_u *CVUpdateOne) ClearExperiences() *CVUpdateOne {
	_u.mutation.ClearExperiences()
	return _u
}

// SetEducations sets the "educations" field.
func (_u *CVUpdateOne) SetEducations(v json.RawMessage) *CVUpdateOne {
	_u.mutation.SetEducations(v)
	return _u
}

// AppendEducations appends value to the "educations" field.
func (_u *CVUpdateOne) AppendEducations(v json.RawMessage) *CVUpdateOne {
	_u.mutation.AppendEducations(v)
	return _u
}

// ClearEducations clears the value of the "educations" field.
func (_u *CVUpdateOne) ClearEducations() *CVUpdateOne {
	_u.mutation.ClearEducations()
	return _u
}

// SetSkills sets the "skills" field.
func (_u *CVUpdateOne) SetSkills(v json.RawMessage) *CVUpdateOne {
	_u.mutation.SetSkills(v)
	return _u
}

// AppendSkills appends value to the "skills" field.
func (_u *CVUpdateOne) AppendSkills(v json.RawMessage) *CVUpdateOne {
	_u.mutation.AppendSkills(v)
	return _u
}

// ClearSkills clears the value of the "skills" field.
func (_u *CVUpdateOne) ClearSkills() *CVUpdateOne {
	_u.mutation.ClearSkills()
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *CVUpdateOne) SetRawText(v string) *CVUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *CVUpdateOne) SetNillableRawText(v *string) *CVUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *CVUpdateOne) ClearRawText() *CVUpdateOne {
	_u.mutation.ClearRawText()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CVUpdateOne) SetCreatedAt(v time.Time) *CVUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CVUpdateOne) SetNillableCreatedAt(v *time.Time) *CVUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CVUpdateOne) SetUpdatedAt(v time.Time) *CVUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *CVUpdateOne) SetProfile(v *Profile) *CVUpdateOne {
	return _u.SetProfileID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *CVUpdateOne) AddJobIDs(ids ...uuid.UUID) *CVUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *CVUpdateOne) AddJobs(v ...*ExtractJob) *CVUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the CVMutation object of the builder.
func (_u *CVUpdateOne) Mutation() *CVMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *CVUpdateOne) ClearProfile() *CVUpdateOne {
	_u.mutation.ClearProfile()
	return _u
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *CVUpdateOne) ClearJobs() *CVUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *CVUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *CVUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *CVUpdateOne) RemoveJobs(v ...*ExtractJob) *CVUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the CVUpdate builder.
func (_u *CVUpdateOne) Where(ps ...predicate.CV) *CVUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CVUpdateOne) Select(field string, fields ...string) *CVUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CV entity.
func (_u *CVUpdateOne) Save(ctx context.Context) (*CV, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CVUpdateOne) SaveX(ctx context.Context) *CV {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CVUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CVUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CVUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := cv.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CVUpdateOne) check() error {
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CV.profile"`)
	}
	return nil
}

func (_u *CVUpdateOne) sqlSave(ctx context.Context) (_node *CV, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cv.Table, cv.Columns, sqlgraph.NewFieldSpec(cv.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CV.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cv.FieldID)
		for _, f := range fields {
			if !cv.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cv.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(cv.FieldFirstName, field.TypeString, value)
	}
	if _u.mutation.FirstNameCleared() {
		_spec.ClearField(cv.FieldFirstName, field.TypeString)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(cv.FieldLastName, field.TypeString, value)
	}
	if _u.mutation.LastNameCleared() {
		_spec.ClearField(cv.FieldLastName, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(cv.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(cv.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(cv.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(cv.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(cv.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(cv.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.Headline(); ok {
		_spec.SetField(cv.FieldHeadline, field.TypeString, value)
	}
	if _u.mutation.HeadlineCleared() {
		_spec.ClearField(cv.FieldHeadline, field.TypeString)
	}
	if value, ok := _u.mutation.Experiences(); ok {
		_spec.SetField(cv.FieldExperiences, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExperiences(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, cv.FieldExperiences, value)
		})
	}
	if _u.mutation.ExperiencesCleared() {
		_spec.ClearField(cv.FieldExperiences, field.TypeJSON)
	}
	if value, ok := _u.mutation.Educations(); ok {
		_spec.SetField(cv.FieldEducations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEducations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, cv.FieldEducations, value)
		})
	}
	if _u.mutation.EducationsCleared() {
		_spec.ClearField(cv.FieldEducations, field.TypeJSON)
	}
	if value, ok := _u.mutation.Skills(); ok {
		_spec.SetField(cv.FieldSkills, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSkills(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, cv.FieldSkills, value)
		})
	}
	if _u.mutation.SkillsCleared() {
		_spec.ClearField(cv.FieldSkills, field.TypeJSON)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(cv.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(cv.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(cv.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(cv.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CV{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cv.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
