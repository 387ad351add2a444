package utils

// DefaultHourlyRate is used when a booking's service carries no hourly rate;
// it keeps the derived hour quantity defined (and avoids dividing by zero).
const DefaultHourlyRate = 50.0

// PlaceholderImageURL stands in for missing service and event images.
const PlaceholderImageURL = "https://via.placeholder.com/600x300"

// ServiceRefPrefix prefixes the short service reference shown in queue tables.
const ServiceRefPrefix = "LYF"
