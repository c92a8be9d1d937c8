// Package gaze implements gaze based pointer interaction for cardboard style
// VR. A Controller is ticked once per frame with the head ray. It tracks the
// object under the ray, clicks it once the gaze rested on it for the gaze
// time and animates a reticle that grows while an interactive object is
// targeted.
//
// The controller does not know about scenes. Raycasting, deciding which
// objects are interactive and delivering events are done by collaborators,
// see Raycaster, Interactivity and Notifier.
package gaze
