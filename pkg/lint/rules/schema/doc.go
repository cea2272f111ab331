// Package schema provides structural rules for automation documents.
//
// These rules catch documents the automation runtime would reject or never run:
//
//   - SCHEMA001: Missing Trigger and Action - Automation has neither
//   - SCHEMA002: Duplicate ID - Two automations share an id
//   - SCHEMA003: Entity ID Format - entity_id is not domain.object_id
//   - SCHEMA004: Invalid Mode - mode outside single/restart/queued/parallel
//   - SCHEMA005: Missing Trigger - Actions with no trigger
//   - SCHEMA006: Missing Action - Triggers with no action
//   - SCHEMA007: Trigger Missing Platform - Trigger item without a type
//   - SCHEMA008: Invalid Max - max is not a positive integer
//   - SCHEMA009: Max Without Queued Mode - max is ignored outside queued/parallel
//   - SCHEMA010: Invalid Max Exceeded - max_exceeded is not a log level
//   - SCHEMA011: Service Format - Service is not domain.service
//   - SCHEMA012: Non-mapping Item - Trigger or action item is not a mapping
package schema
