package services

// Services defined in this package:
// - AuthService: login, password change and password resets
// - UserService: account administration and profile management
// - ProjectService: project CRUD, publishing and document storage
// - FigureService: figure image uploads attached to projects
// - DashboardService: portal-wide aggregates
