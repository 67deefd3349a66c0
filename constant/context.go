package constant

type contextKey string

const AdminSubjectKey contextKey = "admin_subject"
