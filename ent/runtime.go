// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/priyam/studytrail/ent/certificate"
	"github.com/priyam/studytrail/ent/coursesnapshot"
	"github.com/priyam/studytrail/ent/progressrecord"
	"github.com/priyam/studytrail/ent/quizattemptevent"
	"github.com/priyam/studytrail/ent/schema"
	"github.com/priyam/studytrail/ent/setting"
	"github.com/priyam/studytrail/ent/syncevent"
	"github.com/priyam/studytrail/ent/syncitem"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	certificateFields := schema.Certificate{}.Fields()
	_ = certificateFields
	// certificateDescCourseID is the schema descriptor for course_id field.
	certificateDescCourseID := certificateFields[0].Descriptor()
	// certificate.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	certificate.CourseIDValidator = certificateDescCourseID.Validators[0].(func(string) error)
	// certificateDescIssuedAt is the schema descriptor for issued_at field.
	certificateDescIssuedAt := certificateFields[1].Descriptor()
	// certificate.DefaultIssuedAt holds the default value on creation for the issued_at field.
	certificate.DefaultIssuedAt = certificateDescIssuedAt.Default.(func() time.Time)
	coursesnapshotFields := schema.CourseSnapshot{}.Fields()
	_ = coursesnapshotFields
	// coursesnapshotDescCourseID is the schema descriptor for course_id field.
	coursesnapshotDescCourseID := coursesnapshotFields[0].Descriptor()
	// coursesnapshot.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	coursesnapshot.CourseIDValidator = coursesnapshotDescCourseID.Validators[0].(func(string) error)
	// coursesnapshotDescFetchedAt is the schema descriptor for fetched_at field.
	coursesnapshotDescFetchedAt := coursesnapshotFields[3].Descriptor()
	// coursesnapshot.DefaultFetchedAt holds the default value on creation for the fetched_at field.
	coursesnapshot.DefaultFetchedAt = coursesnapshotDescFetchedAt.Default.(func() time.Time)
	// coursesnapshot.UpdateDefaultFetchedAt holds the default value on update for the fetched_at field.
	coursesnapshot.UpdateDefaultFetchedAt = coursesnapshotDescFetchedAt.UpdateDefault.(func() time.Time)
	progressrecordFields := schema.ProgressRecord{}.Fields()
	_ = progressrecordFields
	// progressrecordDescCourseID is the schema descriptor for course_id field.
	progressrecordDescCourseID := progressrecordFields[0].Descriptor()
	// progressrecord.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	progressrecord.CourseIDValidator = progressrecordDescCourseID.Validators[0].(func(string) error)
	// progressrecordDescChapterIndex is the schema descriptor for chapter_index field.
	progressrecordDescChapterIndex := progressrecordFields[1].Descriptor()
	// progressrecord.ChapterIndexValidator is a validator for the "chapter_index" field. It is called by the builders before save.
	progressrecord.ChapterIndexValidator = progressrecordDescChapterIndex.Validators[0].(func(int) error)
	// progressrecordDescTopicIndex is the schema descriptor for topic_index field.
	progressrecordDescTopicIndex := progressrecordFields[2].Descriptor()
	// progressrecord.TopicIndexValidator is a validator for the "topic_index" field. It is called by the builders before save.
	progressrecord.TopicIndexValidator = progressrecordDescTopicIndex.Validators[0].(func(int) error)
	// progressrecordDescUpdatedAt is the schema descriptor for updated_at field.
	progressrecordDescUpdatedAt := progressrecordFields[3].Descriptor()
	// progressrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	progressrecord.DefaultUpdatedAt = progressrecordDescUpdatedAt.Default.(func() time.Time)
	// progressrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	progressrecord.UpdateDefaultUpdatedAt = progressrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	quizattempteventMixin := schema.QuizAttemptEvent{}.Mixin()
	quizattempteventMixinFields0 := quizattempteventMixin[0].Fields()
	_ = quizattempteventMixinFields0
	quizattempteventFields := schema.QuizAttemptEvent{}.Fields()
	_ = quizattempteventFields
	// quizattempteventDescTimestamp is the schema descriptor for timestamp field.
	quizattempteventDescTimestamp := quizattempteventMixinFields0[1].Descriptor()
	// quizattemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizattemptevent.DefaultTimestamp = quizattempteventDescTimestamp.Default.(func() time.Time)
	// quizattempteventDescAttemptID is the schema descriptor for attempt_id field.
	quizattempteventDescAttemptID := quizattempteventFields[0].Descriptor()
	// quizattemptevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	quizattemptevent.AttemptIDValidator = quizattempteventDescAttemptID.Validators[0].(func(string) error)
	// quizattempteventDescCourseID is the schema descriptor for course_id field.
	quizattempteventDescCourseID := quizattempteventFields[1].Descriptor()
	// quizattemptevent.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	quizattemptevent.CourseIDValidator = quizattempteventDescCourseID.Validators[0].(func(string) error)
	// quizattempteventDescChapterIndex is the schema descriptor for chapter_index field.
	quizattempteventDescChapterIndex := quizattempteventFields[2].Descriptor()
	// quizattemptevent.ChapterIndexValidator is a validator for the "chapter_index" field. It is called by the builders before save.
	quizattemptevent.ChapterIndexValidator = quizattempteventDescChapterIndex.Validators[0].(func(int) error)
	// quizattempteventDescTopicIndex is the schema descriptor for topic_index field.
	quizattempteventDescTopicIndex := quizattempteventFields[3].Descriptor()
	// quizattemptevent.TopicIndexValidator is a validator for the "topic_index" field. It is called by the builders before save.
	quizattemptevent.TopicIndexValidator = quizattempteventDescTopicIndex.Validators[0].(func(int) error)
	// quizattempteventDescCorrectCount is the schema descriptor for correct_count field.
	quizattempteventDescCorrectCount := quizattempteventFields[4].Descriptor()
	// quizattemptevent.CorrectCountValidator is a validator for the "correct_count" field. It is called by the builders before save.
	quizattemptevent.CorrectCountValidator = quizattempteventDescCorrectCount.Validators[0].(func(int) error)
	// quizattempteventDescAttemptedCount is the schema descriptor for attempted_count field.
	quizattempteventDescAttemptedCount := quizattempteventFields[5].Descriptor()
	// quizattemptevent.AttemptedCountValidator is a validator for the "attempted_count" field. It is called by the builders before save.
	quizattemptevent.AttemptedCountValidator = quizattempteventDescAttemptedCount.Validators[0].(func(int) error)
	settingFields := schema.Setting{}.Fields()
	_ = settingFields
	// settingDescKey is the schema descriptor for key field.
	settingDescKey := settingFields[0].Descriptor()
	// setting.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	setting.KeyValidator = settingDescKey.Validators[0].(func(string) error)
	synceventMixin := schema.SyncEvent{}.Mixin()
	synceventMixinFields0 := synceventMixin[0].Fields()
	_ = synceventMixinFields0
	synceventFields := schema.SyncEvent{}.Fields()
	_ = synceventFields
	// synceventDescTimestamp is the schema descriptor for timestamp field.
	synceventDescTimestamp := synceventMixinFields0[1].Descriptor()
	// syncevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	syncevent.DefaultTimestamp = synceventDescTimestamp.Default.(func() time.Time)
	// synceventDescItemType is the schema descriptor for item_type field.
	synceventDescItemType := synceventFields[1].Descriptor()
	// syncevent.ItemTypeValidator is a validator for the "item_type" field. It is called by the builders before save.
	syncevent.ItemTypeValidator = synceventDescItemType.Validators[0].(func(string) error)
	// synceventDescAction is the schema descriptor for action field.
	synceventDescAction := synceventFields[2].Descriptor()
	// syncevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	syncevent.ActionValidator = synceventDescAction.Validators[0].(func(string) error)
	// synceventDescAttempts is the schema descriptor for attempts field.
	synceventDescAttempts := synceventFields[3].Descriptor()
	// syncevent.AttemptsValidator is a validator for the "attempts" field. It is called by the builders before save.
	syncevent.AttemptsValidator = synceventDescAttempts.Validators[0].(func(int) error)
	syncitemFields := schema.SyncItem{}.Fields()
	_ = syncitemFields
	// syncitemDescItemType is the schema descriptor for item_type field.
	syncitemDescItemType := syncitemFields[1].Descriptor()
	// syncitem.ItemTypeValidator is a validator for the "item_type" field. It is called by the builders before save.
	syncitem.ItemTypeValidator = syncitemDescItemType.Validators[0].(func(string) error)
	// syncitemDescRetryCount is the schema descriptor for retry_count field.
	syncitemDescRetryCount := syncitemFields[3].Descriptor()
	// syncitem.DefaultRetryCount holds the default value on creation for the retry_count field.
	syncitem.DefaultRetryCount = syncitemDescRetryCount.Default.(int)
	// syncitem.RetryCountValidator is a validator for the "retry_count" field. It is called by the builders before save.
	syncitem.RetryCountValidator = syncitemDescRetryCount.Validators[0].(func(int) error)
	// syncitemDescCreatedAt is the schema descriptor for created_at field.
	syncitemDescCreatedAt := syncitemFields[4].Descriptor()
	// syncitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	syncitem.DefaultCreatedAt = syncitemDescCreatedAt.Default.(func() time.Time)
}
