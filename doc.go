/*
Package posekit provides the data model for human pose estimation results
and helpers to decode raw landmark tensors produced by BlazePose style
models.

A Pose is the set of labeled Landmarks detected in one video frame.  Each
Landmark carries a screen space position, a relative depth value, and an
in-frame likelihood score.  The render subpackage draws poses onto an
image using primitive canvas operations.
*/
package posekit
