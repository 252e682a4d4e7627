package renderer

import (
	"fmt"
	"strings"

	"phong-viewer/scene"
)

// ShaderSource holds the GLSL for one program.
type ShaderSource struct {
	Vertex   string
	Fragment string
}

// Sources returns the GLSL 410 sources for p.
func Sources(p Program) ShaderSource {
	if p == Marker {
		return ShaderSource{Vertex: markerVertexShader, Fragment: markerFragmentShader}
	}
	return ShaderSource{
		Vertex:   shadedVertexShader,
		Fragment: strings.Replace(shadedFragmentShader, "MAX_LIGHTS_VALUE", fmt.Sprint(scene.MaxLights), 1),
	}
}

const shadedVertexShader = `#version 410 core
layout(location = 0) in vec3 vPosition;
layout(location = 1) in vec3 vNormal;

uniform mat4 mModelView;
uniform mat4 mNormals;
uniform mat4 mProjection;

out vec3 fPosC;
out vec3 fNormal;

void main() {
    vec4 posC = mModelView * vec4(vPosition, 1.0);
    fPosC = posC.xyz;
    fNormal = (mNormals * vec4(vNormal, 0.0)).xyz;
    gl_Position = mProjection * posC;
}
` + "\x00"

// Blinn-Phong summed over the active lights. Positions arrive in world
// space; directional lights use pos as the direction towards the light.
const shadedFragmentShader = `#version 410 core
const int MAX_LIGHTS = MAX_LIGHTS_VALUE;

struct LightInfo {
    vec3 pos;
    vec3 Ia;
    vec3 Id;
    vec3 Is;
    bool isDirectional;
    bool isActive;
};

struct MaterialInfo {
    vec3 Ka;
    vec3 Kd;
    vec3 Ks;
    float shininess;
};

uniform int uNLights;
uniform LightInfo uLight[MAX_LIGHTS];
uniform MaterialInfo uMaterial;
uniform mat4 mView;
uniform mat4 mViewNormals;

in vec3 fPosC;
in vec3 fNormal;

out vec4 FragColor;

void main() {
    vec3 N = normalize(fNormal);
    vec3 V = normalize(-fPosC);
    vec3 color = vec3(0.0);

    for (int i = 0; i < MAX_LIGHTS; i++) {
        if (i >= uNLights) break;
        if (!uLight[i].isActive) continue;

        vec3 L;
        if (uLight[i].isDirectional)
            L = normalize((mViewNormals * vec4(uLight[i].pos, 0.0)).xyz);
        else
            L = normalize((mView * vec4(uLight[i].pos, 1.0)).xyz - fPosC);

        vec3 H = normalize(L + V);
        float diffuse = max(dot(L, N), 0.0);
        float specular = pow(max(dot(N, H), 0.0), uMaterial.shininess);
        if (diffuse <= 0.0) specular = 0.0;

        color += uLight[i].Ia * uMaterial.Ka
               + uLight[i].Id * uMaterial.Kd * diffuse
               + uLight[i].Is * uMaterial.Ks * specular;
    }
    FragColor = vec4(color, 1.0);
}
` + "\x00"

const markerVertexShader = `#version 410 core
layout(location = 0) in vec3 vPosition;

uniform mat4 mModelView;
uniform mat4 mProjection;

void main() {
    gl_Position = mProjection * mModelView * vec4(vPosition, 1.0);
}
` + "\x00"

const markerFragmentShader = `#version 410 core
uniform vec3 uLightIs;

out vec4 FragColor;

void main() {
    FragColor = vec4(uLightIs, 1.0);
}
` + "\x00"
