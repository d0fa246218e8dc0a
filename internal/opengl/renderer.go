package opengl

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"obj-viewer/core"
	"obj-viewer/mesh"
)

// GPUMesh holds the OpenGL buffer objects for an uploaded mesh.
type GPUMesh struct {
	VAO         uint32
	VBO         uint32
	VertexCount int32
}

// Renderer is the OpenGL rendering backend: one shader program, one light,
// flat-shaded triangle soups.
type Renderer struct {
	program uint32

	mvpLoc         int32
	modelLoc       int32
	lightPosLoc    int32
	objectColorLoc int32

	viewportW int32
	viewportH int32
}

// lightPosition is the fixed white point light.
var lightPosition = mgl32.Vec3{2, 2, 2}

// vertex shader: MVP transform; world-space position and normal to fragment.
const vertSrc = `
#version 410 core
layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec3 inNormal;

uniform mat4 mvp;
uniform mat4 model;

out vec3 fragNormal;
out vec3 fragWorldPos;

void main() {
    gl_Position  = mvp * vec4(inPosition, 1.0);
    fragNormal   = mat3(model) * inNormal;
    fragWorldPos = (model * vec4(inPosition, 1.0)).xyz;
}
` + "\x00"

// fragment shader: global ambient plus lambert diffuse from a single white
// point light, the fixed-function GL_LIGHT0 arrangement as a shader.
const fragSrc = `
#version 410 core
in vec3 fragNormal;
in vec3 fragWorldPos;

out vec4 outColor;

uniform vec3 lightPos;
uniform vec3 objectColor;

void main() {
    vec3 N = normalize(fragNormal);
    vec3 L = normalize(lightPos - fragWorldPos);
    float diff = max(dot(N, L), 0.0);
    vec3 color = (0.2 + diff) * objectColor;
    outColor = vec4(min(color, vec3(1.0)), 1.0);
}
` + "\x00"

// NewRenderer initialises OpenGL.
// Must be called after the GLFW window context is made current.
func NewRenderer() (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	fmt.Printf("OpenGL version: %s\n", version)

	prog, err := newProgram(vertSrc, fragSrc)
	if err != nil {
		return nil, fmt.Errorf("shader compile: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	r := &Renderer{
		program:        prog,
		mvpLoc:         gl.GetUniformLocation(prog, gl.Str("mvp\x00")),
		modelLoc:       gl.GetUniformLocation(prog, gl.Str("model\x00")),
		lightPosLoc:    gl.GetUniformLocation(prog, gl.Str("lightPos\x00")),
		objectColorLoc: gl.GetUniformLocation(prog, gl.Str("objectColor\x00")),
	}

	gl.UseProgram(prog)
	gl.Uniform3f(r.lightPosLoc, lightPosition.X(), lightPosition.Y(), lightPosition.Z())

	return r, nil
}

// SetViewport resizes the OpenGL viewport.
func (r *Renderer) SetViewport(width, height int) {
	r.viewportW = int32(width)
	r.viewportH = int32(height)
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Clear wipes the color and depth buffers with the given background color.
func (r *Renderer) Clear(c core.Color) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Upload expands a mesh into a flat-normal vertex soup and creates the GPU
// buffers for it. Every triangle gets its own three vertices carrying the
// face normal, so shared positions never blend normals across faces.
func (r *Renderer) Upload(m *mesh.Mesh) *GPUMesh {
	vertices := make([]core.Vertex, 0, len(m.Triangles)*3)
	for _, tri := range m.Triangles {
		v0 := m.Vertices[tri[0]]
		v1 := m.Vertices[tri[1]]
		v2 := m.Vertices[tri[2]]
		n := mesh.FaceNormal(v0, v1, v2)
		vertices = append(vertices,
			core.Vertex{Position: v0, Normal: n},
			core.Vertex{Position: v1, Normal: n},
			core.Vertex{Position: v2, Normal: n},
		)
	}

	gpu := &GPUMesh{VertexCount: int32(len(vertices))}
	if len(vertices) == 0 {
		return gpu
	}

	stride := int32(unsafe.Sizeof(core.Vertex{}))

	gl.GenVertexArrays(1, &gpu.VAO)
	gl.GenBuffers(1, &gpu.VBO)
	gl.BindVertexArray(gpu.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, gpu.VBO)
	gl.BufferData(gl.ARRAY_BUFFER,
		len(vertices)*int(stride),
		gl.Ptr(vertices),
		gl.STATIC_DRAW)

	var v core.Vertex
	posOff := int(unsafe.Offsetof(v.Position))
	normOff := int(unsafe.Offsetof(v.Normal))

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(posOff))

	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(normOff))

	gl.BindVertexArray(0)

	return gpu
}

// Draw renders an uploaded mesh with the given transforms and flat color.
func (r *Renderer) Draw(gpu *GPUMesh, mvp, model mgl32.Mat4, color core.Color) {
	if gpu == nil || gpu.VertexCount == 0 {
		return
	}

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.mvpLoc, 1, false, &mvp[0])
	gl.UniformMatrix4fv(r.modelLoc, 1, false, &model[0])
	gl.Uniform3f(r.objectColorLoc, color.R, color.G, color.B)

	gl.BindVertexArray(gpu.VAO)
	gl.DrawArrays(gl.TRIANGLES, 0, gpu.VertexCount)
	gl.BindVertexArray(0)
}

// Release frees the GPU buffers of an uploaded mesh.
func (r *Renderer) Release(gpu *GPUMesh) {
	if gpu == nil || gpu.VAO == 0 {
		return
	}
	gl.DeleteVertexArrays(1, &gpu.VAO)
	gl.DeleteBuffers(1, &gpu.VBO)
	gpu.VAO = 0
	gpu.VBO = 0
	gpu.VertexCount = 0
}

// Destroy releases the shader program.
func (r *Renderer) Destroy() {
	gl.DeleteProgram(r.program)
}

// ── Shader helpers ────────────────────────────────────────────────────────────

func newProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("link failed: %v", log)
	}

	gl.DeleteShader(vert)
	gl.DeleteShader(frag)
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("compile failed: %v", log)
	}
	return shader, nil
}
