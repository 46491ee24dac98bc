package i18n

// Key identifies a UI string.
type Key string

const (
	KeyAppTitle        Key = "app_title"
	KeyAppSubtitle     Key = "app_subtitle"
	KeyChooseDetective Key = "choose_detective"
	KeyStoryMode       Key = "story_mode"
	KeyStudyMode       Key = "study_mode"
	KeyTestMode        Key = "test_mode"
	KeyHistory         Key = "history"
	KeyChangeDetective Key = "change_detective"
	KeyQuit            Key = "quit"
	KeyBackToMenu      Key = "back_to_menu"
	KeySubmit          Key = "submit_button"
	KeyCorrectAnswer   Key = "correct_answer"
	KeyExplanation     Key = "explanation"
	KeyYourAnswer      Key = "your_answer"
	KeyResultsTitle    Key = "results_title"
	KeyScore           Key = "score"
	KeyLevelUp         Key = "level_up"
	KeyPenalty         Key = "penalty"
	KeyPerfectCase     Key = "perfect_case"
	KeyCredibility     Key = "credibility"
	KeyCaseProgress    Key = "case_progress"
	KeyLevel           Key = "level"
	KeyPerfectCases    Key = "perfect_cases"
	KeyNeedsAnswer     Key = "needs_answer"
	KeyTryAgain        Key = "try_again"
	KeyCorrectClue     Key = "correct_clue"
	KeyCaseFiles       Key = "case_files"
	KeySelectCase      Key = "select_case"
	KeyChapterMissing  Key = "chapter_missing"
	KeyNoHistory       Key = "no_history"
	KeyUnanswered      Key = "unanswered"

	KeyHintNavigate    Key = "hint_navigate"
	KeyHintSelect      Key = "hint_select"
	KeyHintToggle      Key = "hint_toggle"
	KeyHintEdit        Key = "hint_edit"
	KeyHintDone        Key = "hint_done"
	KeyHintGrab        Key = "hint_grab"
	KeyHintDrop        Key = "hint_drop"
	KeyHintSubQuestion Key = "hint_sub_question"
	KeyHintQuestions   Key = "hint_questions"
	KeyHintConfirm     Key = "hint_confirm"
	KeyHintContinue    Key = "hint_continue"
	KeyHintBack        Key = "hint_back"
	KeyHintLanguage    Key = "hint_language"
	KeyHintQuit        Key = "hint_quit"
	KeyTypeAnswer      Key = "type_answer"
	KeyQuestionOf      Key = "question_of"
	KeyAnswered        Key = "answered"
	KeyAbandonTest     Key = "abandon_test"
	KeyLoading         Key = "loading"
	KeyLoadFailed      Key = "load_failed"
	KeyLocked          Key = "locked"
	KeyStudyNote       Key = "study_note"
	KeyReview          Key = "review"
	KeyUnitsCorrect    Key = "units_correct"
	KeyEndOfChapter    Key = "end_of_chapter"
	KeyNoQuestions     Key = "no_questions"
	KeyNextLevel       Key = "next_level"
	KeyTopRank         Key = "top_rank"
)

var table = map[Key]Text{
	KeyAppTitle:        {English: "Detective Academy", Vietnamese: "Học Viện Thám Tử"},
	KeyAppSubtitle:     {English: "Solve the case, one question at a time.", Vietnamese: "Phá án, từng câu hỏi một."},
	KeyChooseDetective: {English: "Choose your detective partner to begin the investigation!", Vietnamese: "Chọn thám tử đồng hành để bắt đầu điều tra!"},
	KeyStoryMode:       {English: "Story Mode", Vietnamese: "Chế độ cốt truyện"},
	KeyStudyMode:       {English: "Study Mode", Vietnamese: "Chế độ học"},
	KeyTestMode:        {English: "Test Mode", Vietnamese: "Chế độ kiểm tra"},
	KeyHistory:         {English: "Case History", Vietnamese: "Lịch sử vụ án"},
	KeyChangeDetective: {English: "Change Detective", Vietnamese: "Đổi thám tử"},
	KeyQuit:            {English: "Quit", Vietnamese: "Thoát"},
	KeyBackToMenu:      {English: "Back to Menu", Vietnamese: "Về menu"},
	KeySubmit:          {English: "Submit", Vietnamese: "Nộp bài"},
	KeyCorrectAnswer:   {English: "Correct answer", Vietnamese: "Đáp án đúng"},
	KeyExplanation:     {English: "Explanation", Vietnamese: "Giải thích"},
	KeyYourAnswer:      {English: "Your answer", Vietnamese: "Câu trả lời của bạn"},
	KeyResultsTitle:    {English: "Case Report", Vietnamese: "Báo cáo vụ án"},
	KeyScore:           {English: "Score", Vietnamese: "Điểm"},
	KeyLevelUp:         {English: "Level up! Your detective reached level %d.", Vietnamese: "Lên cấp! Thám tử của bạn đạt cấp %d."},
	KeyPenalty:         {English: "Your credibility ran out. Case progress was set back.", Vietnamese: "Uy tín đã cạn. Tiến trình vụ án bị lùi lại."},
	KeyPerfectCase:     {English: "Perfect case!", Vietnamese: "Phá án hoàn hảo!"},
	KeyCredibility:     {English: "Credibility", Vietnamese: "Uy Tín"},
	KeyCaseProgress:    {English: "Case Progress", Vietnamese: "Tiến Trình Vụ Án"},
	KeyLevel:           {English: "Level %d", Vietnamese: "Cấp %d"},
	KeyPerfectCases:    {English: "Perfect Cases: %d", Vietnamese: "Phá án hoàn hảo: %d"},
	KeyNeedsAnswer:     {English: "Please provide an answer.", Vietnamese: "Vui lòng đưa ra câu trả lời."},
	KeyTryAgain:        {English: "That doesn't seem right. Let's rethink this.", Vietnamese: "Có vẻ không đúng. Hãy suy nghĩ lại."},
	KeyCorrectClue:     {English: "Correct! That's the clue we needed.", Vietnamese: "Chính xác! Đó là manh mối chúng ta cần."},
	KeyCaseFiles:       {English: "Story Mode: Case Files", Vietnamese: "Cốt truyện: Hồ sơ vụ án"},
	KeySelectCase:      {English: "Select a case to begin your investigation.", Vietnamese: "Chọn một vụ án để bắt đầu điều tra."},
	KeyChapterMissing:  {English: "This case file could not be found.", Vietnamese: "Không tìm thấy hồ sơ vụ án này."},
	KeyNoHistory:       {English: "No graded cases yet. Take a test!", Vietnamese: "Chưa có bài kiểm tra nào. Hãy thử sức!"},
	KeyUnanswered:      {English: "(no answer)", Vietnamese: "(chưa trả lời)"},

	KeyHintNavigate:    {English: "Navigate", Vietnamese: "Di chuyển"},
	KeyHintSelect:      {English: "Select", Vietnamese: "Chọn"},
	KeyHintToggle:      {English: "Toggle", Vietnamese: "Đánh dấu"},
	KeyHintEdit:        {English: "Edit blank", Vietnamese: "Điền chỗ trống"},
	KeyHintDone:        {English: "Done", Vietnamese: "Xong"},
	KeyHintGrab:        {English: "Pick up step", Vietnamese: "Nhấc bước"},
	KeyHintDrop:        {English: "Drop step", Vietnamese: "Đặt bước"},
	KeyHintSubQuestion: {English: "Sub-question", Vietnamese: "Câu con"},
	KeyHintQuestions:   {English: "Prev/next question", Vietnamese: "Câu trước/sau"},
	KeyHintConfirm:     {English: "Confirm", Vietnamese: "Xác nhận"},
	KeyHintContinue:    {English: "Continue", Vietnamese: "Tiếp tục"},
	KeyHintBack:        {English: "Back", Vietnamese: "Quay lại"},
	KeyHintLanguage:    {English: "Language", Vietnamese: "Ngôn ngữ"},
	KeyHintQuit:        {English: "Quit", Vietnamese: "Thoát"},
	KeyTypeAnswer:      {English: "Type your answer...", Vietnamese: "Nhập câu trả lời..."},
	KeyQuestionOf:      {English: "Question %d/%d", Vietnamese: "Câu %d/%d"},
	KeyAnswered:        {English: "%d/%d answered", Vietnamese: "Đã trả lời %d/%d"},
	KeyAbandonTest:     {English: "Abandon this test? Nothing will be graded. (y/n)", Vietnamese: "Bỏ bài kiểm tra? Bài sẽ không được chấm. (y/n)"},
	KeyLoading:         {English: "Loading...", Vietnamese: "Đang tải..."},
	KeyLoadFailed:      {English: "Could not load case history.", Vietnamese: "Không thể tải lịch sử vụ án."},
	KeyLocked:          {English: "locked", Vietnamese: "đã khóa"},
	KeyStudyNote:       {English: "Study mode: answers are checked as you go and nothing is graded.", Vietnamese: "Chế độ học: câu trả lời được kiểm tra ngay và không chấm điểm."},
	KeyReview:          {English: "Review", Vietnamese: "Xem lại"},
	KeyUnitsCorrect:    {English: "%d/%d correct", Vietnamese: "Đúng %d/%d"},
	KeyEndOfChapter:    {English: "End of the case file.", Vietnamese: "Hết hồ sơ vụ án."},
	KeyNoQuestions:     {English: "No questions available.", Vietnamese: "Không có câu hỏi nào."},
	KeyNextLevel:       {English: "Next level at %d", Vietnamese: "Cấp tiếp theo: %d"},
	KeyTopRank:         {English: "Top rank", Vietnamese: "Cấp cao nhất"},
}

// T returns the UI string for key in lang. Unknown keys return the key itself.
func T(key Key, lang Language) string {
	if t, ok := table[key]; ok {
		return t.Get(lang)
	}
	return string(key)
}
