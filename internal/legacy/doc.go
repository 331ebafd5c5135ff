// Package legacy maps URLs from the previous site's link structure onto the
// current page layout.
//
// Resolve is a pure function: it performs string work against immutable
// tables built at package init and is safe for concurrent use. A nil result
// means no rule recognised the path and the caller should continue with its
// normal routing.
//
// Rules are evaluated in a fixed precedence:
//
//	vendor/bundle  ->  404, noindex
//	blog/*         ->  /
//	tools/*        ->  /services
//	services/business-consulting*  ->  /services
//	practice-areas/{service}[/{state}[/{city}]]
//	locations/cities/{city-st[-st][-service phrase]}
//	locations/states/{state}
//	{location-service} | {service-location}      one segment
//	{service}/{location}                          two segments
//	{service}/{state}/{city}                      three segments
package legacy
