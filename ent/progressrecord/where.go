// Code generated by ent, DO NOT EDIT.

package progressrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/priyam/studytrail/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLTE(FieldID, id))
}

// CourseID applies equality check predicate on the "course_id" field. It's identical to CourseIDEQ.
func CourseID(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldCourseID, v))
}

// ChapterIndex applies equality check predicate on the "chapter_index" field. It's identical to ChapterIndexEQ.
func ChapterIndex(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldChapterIndex, v))
}

// TopicIndex applies equality check predicate on the "topic_index" field. It's identical to TopicIndexEQ.
func TopicIndex(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldTopicIndex, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// CourseIDEQ applies the EQ predicate on the "course_id" field.
func CourseIDEQ(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldCourseID, v))
}

// CourseIDNEQ applies the NEQ predicate on the "course_id" field.
func CourseIDNEQ(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldCourseID, v))
}

// CourseIDIn applies the In predicate on the "course_id" field.
func CourseIDIn(vs ...string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIn(FieldCourseID, vs...))
}

// CourseIDNotIn applies the NotIn predicate on the "course_id" field.
func CourseIDNotIn(vs ...string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotIn(FieldCourseID, vs...))
}

// CourseIDGT applies the GT predicate on the "course_id" field.
func CourseIDGT(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGT(FieldCourseID, v))
}

// CourseIDGTE applies the GTE predicate on the "course_id" field.
func CourseIDGTE(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGTE(FieldCourseID, v))
}

// CourseIDLT applies the LT predicate on the "course_id" field.
func CourseIDLT(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLT(FieldCourseID, v))
}

// CourseIDLTE applies the LTE predicate on the "course_id" field.
func CourseIDLTE(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLTE(FieldCourseID, v))
}

// CourseIDContains applies the Contains predicate on the "course_id" field.
func CourseIDContains(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldContains(FieldCourseID, v))
}

// CourseIDHasPrefix applies the HasPrefix predicate on the "course_id" field.
func CourseIDHasPrefix(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldHasPrefix(FieldCourseID, v))
}

// CourseIDHasSuffix applies the HasSuffix predicate on the "course_id" field.
func CourseIDHasSuffix(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldHasSuffix(FieldCourseID, v))
}

// CourseIDEqualFold applies the EqualFold predicate on the "course_id" field.
func CourseIDEqualFold(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEqualFold(FieldCourseID, v))
}

// CourseIDContainsFold applies the ContainsFold predicate on the "course_id" field.
func CourseIDContainsFold(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldContainsFold(FieldCourseID, v))
}

// ChapterIndexEQ applies the EQ predicate on the "chapter_index" field.
func ChapterIndexEQ(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldChapterIndex, v))
}

// ChapterIndexNEQ applies the NEQ predicate on the "chapter_index" field.
func ChapterIndexNEQ(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldChapterIndex, v))
}

// ChapterIndexIn applies the In predicate on the "chapter_index" field.
func ChapterIndexIn(vs ...int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIn(FieldChapterIndex, vs...))
}

// ChapterIndexNotIn applies the NotIn predicate on the "chapter_index" field.
func ChapterIndexNotIn(vs ...int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotIn(FieldChapterIndex, vs...))
}

// ChapterIndexGT applies the GT predicate on the "chapter_index" field.
func ChapterIndexGT(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGT(FieldChapterIndex, v))
}

// ChapterIndexGTE applies the GTE predicate on the "chapter_index" field.
func ChapterIndexGTE(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGTE(FieldChapterIndex, v))
}

// ChapterIndexLT applies the LT predicate on the "chapter_index" field.
func ChapterIndexLT(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLT(FieldChapterIndex, v))
}

// ChapterIndexLTE applies the LTE predicate on the "chapter_index" field.
func ChapterIndexLTE(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLTE(FieldChapterIndex, v))
}

// TopicIndexEQ applies the EQ predicate on the "topic_index" field.
func TopicIndexEQ(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldTopicIndex, v))
}

// TopicIndexNEQ applies the NEQ predicate on the "topic_index" field.
func TopicIndexNEQ(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldTopicIndex, v))
}

// TopicIndexIn applies the In predicate on the "topic_index" field.
func TopicIndexIn(vs ...int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIn(FieldTopicIndex, vs...))
}

// TopicIndexNotIn applies the NotIn predicate on the "topic_index" field.
func TopicIndexNotIn(vs ...int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotIn(FieldTopicIndex, vs...))
}

// TopicIndexGT applies the GT predicate on the "topic_index" field.
func TopicIndexGT(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGT(FieldTopicIndex, v))
}

// TopicIndexGTE applies the GTE predicate on the "topic_index" field.
func TopicIndexGTE(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGTE(FieldTopicIndex, v))
}

// TopicIndexLT applies the LT predicate on the "topic_index" field.
func TopicIndexLT(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLT(FieldTopicIndex, v))
}

// TopicIndexLTE applies the LTE predicate on the "topic_index" field.
func TopicIndexLTE(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLTE(FieldTopicIndex, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProgressRecord) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProgressRecord) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProgressRecord) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.NotPredicates(p))
}
