// Package services holds the business rules of the API. Each service is an
// interface with an unexported implementation over the store interfaces in
// stores.go.
//
// Services defined in this package:
// - StudentService: student records and their academic classification
// - EventService: campus events
// - AttendanceService: attendance slots and records
// - FineService: attendance fine summaries and assessment
// - PayableService: fees, fines and receipts
// - ReferenceService: programs, majors, degrees, year levels, organizations
// - OrgChartService: per-organization org chart editing and publishing
package services
