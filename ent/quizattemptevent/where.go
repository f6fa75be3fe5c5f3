// Code generated by ent, DO NOT EDIT.

package quizattemptevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/priyam/studytrail/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldTimestamp, v))
}

// AttemptID applies equality check predicate on the "attempt_id" field. It's identical to AttemptIDEQ.
func AttemptID(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldAttemptID, v))
}

// CourseID applies equality check predicate on the "course_id" field. It's identical to CourseIDEQ.
func CourseID(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldCourseID, v))
}

// ChapterIndex applies equality check predicate on the "chapter_index" field. It's identical to ChapterIndexEQ.
func ChapterIndex(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldChapterIndex, v))
}

// TopicIndex applies equality check predicate on the "topic_index" field. It's identical to TopicIndexEQ.
func TopicIndex(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldTopicIndex, v))
}

// CorrectCount applies equality check predicate on the "correct_count" field. It's identical to CorrectCountEQ.
func CorrectCount(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldCorrectCount, v))
}

// AttemptedCount applies equality check predicate on the "attempted_count" field. It's identical to AttemptedCountEQ.
func AttemptedCount(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldAttemptedCount, v))
}

// Passed applies equality check predicate on the "passed" field. It's identical to PassedEQ.
func Passed(v bool) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldPassed, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldLTE(FieldTimestamp, v))
}

// AttemptIDEQ applies the EQ predicate on the "attempt_id" field.
func AttemptIDEQ(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldAttemptID, v))
}

// AttemptIDNEQ applies the NEQ predicate on the "attempt_id" field.
func AttemptIDNEQ(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNEQ(FieldAttemptID, v))
}

// AttemptIDIn applies the In predicate on the "attempt_id" field.
func AttemptIDIn(vs ...string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldIn(FieldAttemptID, vs...))
}

// AttemptIDNotIn applies the NotIn predicate on the "attempt_id" field.
func AttemptIDNotIn(vs ...string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNotIn(FieldAttemptID, vs...))
}

// AttemptIDGT applies the GT predicate on the "attempt_id" field.
func AttemptIDGT(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldGT(FieldAttemptID, v))
}

// AttemptIDGTE applies the GTE predicate on the "attempt_id" field.
func AttemptIDGTE(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldGTE(FieldAttemptID, v))
}

// AttemptIDLT applies the LT predicate on the "attempt_id" field.
func AttemptIDLT(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldLT(FieldAttemptID, v))
}

// AttemptIDLTE applies the LTE predicate on the "attempt_id" field.
func AttemptIDLTE(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldLTE(FieldAttemptID, v))
}

// AttemptIDContains applies the Contains predicate on the "attempt_id" field.
func AttemptIDContains(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldContains(FieldAttemptID, v))
}

// AttemptIDHasPrefix applies the HasPrefix predicate on the "attempt_id" field.
func AttemptIDHasPrefix(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldHasPrefix(FieldAttemptID, v))
}

// AttemptIDHasSuffix applies the HasSuffix predicate on the "attempt_id" field.
func AttemptIDHasSuffix(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldHasSuffix(FieldAttemptID, v))
}

// AttemptIDEqualFold applies the EqualFold predicate on the "attempt_id" field.
func AttemptIDEqualFold(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEqualFold(FieldAttemptID, v))
}

// AttemptIDContainsFold applies the ContainsFold predicate on the "attempt_id" field.
func AttemptIDContainsFold(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldContainsFold(FieldAttemptID, v))
}

// CourseIDEQ applies the EQ predicate on the "course_id" field.
func CourseIDEQ(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldCourseID, v))
}

// CourseIDNEQ applies the NEQ predicate on the "course_id" field.
func CourseIDNEQ(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNEQ(FieldCourseID, v))
}

// CourseIDIn applies the In predicate on the "course_id" field.
func CourseIDIn(vs ...string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldIn(FieldCourseID, vs...))
}

// CourseIDNotIn applies the NotIn predicate on the "course_id" field.
func CourseIDNotIn(vs ...string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNotIn(FieldCourseID, vs...))
}

// CourseIDGT applies the GT predicate on the "course_id" field.
func CourseIDGT(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldGT(FieldCourseID, v))
}

// CourseIDGTE applies the GTE predicate on the "course_id" field.
func CourseIDGTE(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldGTE(FieldCourseID, v))
}

// CourseIDLT applies the LT predicate on the "course_id" field.
func CourseIDLT(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldLT(FieldCourseID, v))
}

// CourseIDLTE applies the LTE predicate on the "course_id" field.
func CourseIDLTE(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldLTE(FieldCourseID, v))
}

// CourseIDContains applies the Contains predicate on the "course_id" field.
func CourseIDContains(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldContains(FieldCourseID, v))
}

// CourseIDHasPrefix applies the HasPrefix predicate on the "course_id" field.
func CourseIDHasPrefix(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldHasPrefix(FieldCourseID, v))
}

// CourseIDHasSuffix applies the HasSuffix predicate on the "course_id" field.
func CourseIDHasSuffix(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldHasSuffix(FieldCourseID, v))
}

// CourseIDEqualFold applies the EqualFold predicate on the "course_id" field.
func CourseIDEqualFold(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEqualFold(FieldCourseID, v))
}

// CourseIDContainsFold applies the ContainsFold predicate on the "course_id" field.
func CourseIDContainsFold(v string) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldContainsFold(FieldCourseID, v))
}

// ChapterIndexEQ applies the EQ predicate on the "chapter_index" field.
func ChapterIndexEQ(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldChapterIndex, v))
}

// ChapterIndexNEQ applies the NEQ predicate on the "chapter_index" field.
func ChapterIndexNEQ(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNEQ(FieldChapterIndex, v))
}

// ChapterIndexIn applies the In predicate on the "chapter_index" field.
func ChapterIndexIn(vs ...int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldIn(FieldChapterIndex, vs...))
}

// ChapterIndexNotIn applies the NotIn predicate on the "chapter_index" field.
func ChapterIndexNotIn(vs ...int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNotIn(FieldChapterIndex, vs...))
}

// ChapterIndexGT applies the GT predicate on the "chapter_index" field.
func ChapterIndexGT(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldGT(FieldChapterIndex, v))
}

// ChapterIndexGTE applies the GTE predicate on the "chapter_index" field.
func ChapterIndexGTE(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldGTE(FieldChapterIndex, v))
}

// ChapterIndexLT applies the LT predicate on the "chapter_index" field.
func ChapterIndexLT(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldLT(FieldChapterIndex, v))
}

// ChapterIndexLTE applies the LTE predicate on the "chapter_index" field.
func ChapterIndexLTE(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldLTE(FieldChapterIndex, v))
}

// TopicIndexEQ applies the EQ predicate on the "topic_index" field.
func TopicIndexEQ(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldTopicIndex, v))
}

// TopicIndexNEQ applies the NEQ predicate on the "topic_index" field.
func TopicIndexNEQ(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNEQ(FieldTopicIndex, v))
}

// TopicIndexIn applies the In predicate on the "topic_index" field.
func TopicIndexIn(vs ...int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldIn(FieldTopicIndex, vs...))
}

// TopicIndexNotIn applies the NotIn predicate on the "topic_index" field.
func TopicIndexNotIn(vs ...int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNotIn(FieldTopicIndex, vs...))
}

// TopicIndexGT applies the GT predicate on the "topic_index" field.
func TopicIndexGT(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldGT(FieldTopicIndex, v))
}

// TopicIndexGTE applies the GTE predicate on the "topic_index" field.
func TopicIndexGTE(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldGTE(FieldTopicIndex, v))
}

// TopicIndexLT applies the LT predicate on the "topic_index" field.
func TopicIndexLT(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldLT(FieldTopicIndex, v))
}

// TopicIndexLTE applies the LTE predicate on the "topic_index" field.
func TopicIndexLTE(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldLTE(FieldTopicIndex, v))
}

// CorrectCountEQ applies the EQ predicate on the "correct_count" field.
func CorrectCountEQ(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldCorrectCount, v))
}

// CorrectCountNEQ applies the NEQ predicate on the "correct_count" field.
func CorrectCountNEQ(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNEQ(FieldCorrectCount, v))
}

// CorrectCountIn applies the In predicate on the "correct_count" field.
func CorrectCountIn(vs ...int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldIn(FieldCorrectCount, vs...))
}

// CorrectCountNotIn applies the NotIn predicate on the "correct_count" field.
func CorrectCountNotIn(vs ...int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNotIn(FieldCorrectCount, vs...))
}

// CorrectCountGT applies the GT predicate on the "correct_count" field.
func CorrectCountGT(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldGT(FieldCorrectCount, v))
}

// CorrectCountGTE applies the GTE predicate on the "correct_count" field.
func CorrectCountGTE(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldGTE(FieldCorrectCount, v))
}

// CorrectCountLT applies the LT predicate on the "correct_count" field.
func CorrectCountLT(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldLT(FieldCorrectCount, v))
}

// CorrectCountLTE applies the LTE predicate on the "correct_count" field.
func CorrectCountLTE(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldLTE(FieldCorrectCount, v))
}

// AttemptedCountEQ applies the EQ predicate on the "attempted_count" field.
func AttemptedCountEQ(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldAttemptedCount, v))
}

// AttemptedCountNEQ applies the NEQ predicate on the "attempted_count" field.
func AttemptedCountNEQ(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNEQ(FieldAttemptedCount, v))
}

// AttemptedCountIn applies the In predicate on the "attempted_count" field.
func AttemptedCountIn(vs ...int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldIn(FieldAttemptedCount, vs...))
}

// AttemptedCountNotIn applies the NotIn predicate on the "attempted_count" field.
func AttemptedCountNotIn(vs ...int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNotIn(FieldAttemptedCount, vs...))
}

// AttemptedCountGT applies the GT predicate on the "attempted_count" field.
func AttemptedCountGT(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldGT(FieldAttemptedCount, v))
}

// AttemptedCountGTE applies the GTE predicate on the "attempted_count" field.
func AttemptedCountGTE(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldGTE(FieldAttemptedCount, v))
}

// AttemptedCountLT applies the LT predicate on the "attempted_count" field.
func AttemptedCountLT(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldLT(FieldAttemptedCount, v))
}

// AttemptedCountLTE applies the LTE predicate on the "attempted_count" field.
func AttemptedCountLTE(v int) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldLTE(FieldAttemptedCount, v))
}

// PassedEQ applies the EQ predicate on the "passed" field.
func PassedEQ(v bool) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldEQ(FieldPassed, v))
}

// PassedNEQ applies the NEQ predicate on the "passed" field.
func PassedNEQ(v bool) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.FieldNEQ(FieldPassed, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuizAttemptEvent) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuizAttemptEvent) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuizAttemptEvent) predicate.QuizAttemptEvent {
	return predicate.QuizAttemptEvent(sql.NotPredicates(p))
}
