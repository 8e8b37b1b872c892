package apiclient

// Endpoint templates of the careers API. Kept in one place so the resource
// services never hand-build paths.

func AuthRegister() string { return "/api/auth/register" }
func AuthLogin() string    { return "/api/auth/login" }
func AuthMe() string       { return "/api/auth/me" }

func Company(slug string) string       { return "/api/companies/" + slug }
func CompanyTheme(slug string) string  { return "/api/companies/" + slug + "/theme" }
func CompanyUpload(slug string) string { return "/api/companies/" + slug + "/upload" }

func Sections(slug string) string        { return "/api/companies/" + slug + "/sections" }
func Section(slug, id string) string     { return "/api/companies/" + slug + "/sections/" + id }
func SectionsReorder(slug string) string { return "/api/companies/" + slug + "/sections/reorder" }

// Jobs is the public, published-only listing; JobsAdmin returns every
// status and requires auth.
func Jobs(slug string) string           { return "/api/companies/" + slug + "/jobs" }
func JobsAdmin(slug string) string      { return "/api/companies/" + slug + "/jobs/all" }
func Job(slug, jobSlug string) string   { return "/api/companies/" + slug + "/jobs/" + jobSlug }
func JobByID(slug, id string) string    { return "/api/companies/" + slug + "/jobs/" + id }
func JobPublish(slug, id string) string { return "/api/companies/" + slug + "/jobs/" + id + "/publish" }
