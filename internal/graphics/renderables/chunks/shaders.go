package chunks

import (
	"fmt"

	"mini-voxel/internal/shading"
)

// GLSL mirror of the internal/shading stage functions. The face identifier
// is derived from gl_VertexID, which carries the fetched index value for
// indexed draws, and travels to the fragment stage as a flat varying so it
// resolves per primitive instead of blending across edges.

var chunkVertSrc = fmt.Sprintf(`#version 410 core

layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aColor;

uniform mat4 uCamera; // view-projection, per frame
uniform mat4 uModel;  // per draw

out vec3 vColor;
flat out uint vFace;

void main() {
    gl_Position = uCamera * uModel * vec4(aPos, 1.0);
    vColor = aColor;
    vFace = uint(gl_VertexID) / %du;
}
`, shading.VerticesPerFace)

// vColor stays declared so the varying interpolates exactly as the CPU
// pipeline's fragment input does, even though the lighting ladder ignores it.
const chunkFragSrc = `#version 410 core

uniform usamplerBuffer uFaceCodes; // one orientation code per face

in vec3 vColor;
flat in uint vFace;

out vec4 fragColor;

void main() {
    uint code = texelFetch(uFaceCodes, int(vFace)).r;
    switch (code) {
    case 0u:
    case 1u:
        fragColor = vec4(0.3, 0.0, 0.0, 1.0);
        break;
    case 2u:
    case 3u:
        fragColor = vec4(0.5, 0.0, 0.0, 1.0);
        break;
    case 4u:
    case 5u:
        fragColor = vec4(0.75, 0.0, 0.0, 1.0);
        break;
    default:
        fragColor = vec4(0.5, 0.5, 0.5, 1.0);
        break;
    }
}
`
