// Package performance provides rules for automations that run far more often
// than intended or hold runs open indefinitely.
//
//   - PERF001: High Frequency Trigger - unfiltered state trigger or short time_pattern
//   - PERF002: Template Uses Now - trigger template calls now()
//   - PERF003: Wait Without Timeout - wait_template/wait_for_trigger with no timeout
package performance
